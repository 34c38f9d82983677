package store

import (
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/content"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/operations"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/site"
)

// Snapshot is the full application data object. It is always replaced
// wholesale, never patched in place: every update builds a new Snapshot and
// swaps the pointer, which keeps reference-equality change detection cheap
// for consumers.
type Snapshot struct {
	Models                 []model.Model                      `json:"models"`
	NewsItems              []content.NewsItem                 `json:"newsItems"`
	Testimonials           []content.Testimonial              `json:"testimonials"`
	Articles               []content.Article                  `json:"articles"`
	ArticleComments        []content.ArticleComment           `json:"articleComments"`
	ForumThreads           []content.ForumThread              `json:"forumThreads"`
	ForumReplies           []content.ForumReply               `json:"forumReplies"`
	CastingApplications    []casting.Application              `json:"castingApplications"`
	FashionDayReservations []operations.FashionDayReservation `json:"fashionDayReservations"`
	BookingRequests        []operations.BookingRequest        `json:"bookingRequests"`
	ContactMessages        []operations.ContactMessage        `json:"contactMessages"`
	Absences               []operations.Absence               `json:"absences"`
	MonthlyPayments        []operations.MonthlyPayment        `json:"monthlyPayments"`
	RecoveryRequests       []operations.RecoveryRequest       `json:"recoveryRequests"`
	SiteConfig             site.SiteConfig                    `json:"siteConfig"`
	AgencyInfo             site.AgencyInfo                    `json:"agencyInfo"`
	AgencyServices         []site.AgencyService               `json:"agencyServices"`
	AgencyTimeline         []site.TimelineEntry               `json:"agencyTimeline"`
	AgencyPartners         []site.Partner                     `json:"agencyPartners"`
	AgencyAchievements     []site.Achievement                 `json:"agencyAchievements"`
	SocialLinks            map[string]string                  `json:"socialLinks"`
	SiteImages             map[string]string                  `json:"siteImages"`
	NavLinks               []site.NavLink                     `json:"navLinks"`
	PagesContent           []site.PageContent                 `json:"pagesContent"`
	JuryMembers            []site.JuryMember                  `json:"juryMembers"`
	RegistrationStaff      []site.RegistrationStaff           `json:"registrationStaff"`
}

// fillDefaults replaces nil collections with empty ones so consumers never
// branch on missing sections.
func (s *Snapshot) fillDefaults() {
	if s.Models == nil {
		s.Models = []model.Model{}
	}
	if s.NewsItems == nil {
		s.NewsItems = []content.NewsItem{}
	}
	if s.Testimonials == nil {
		s.Testimonials = []content.Testimonial{}
	}
	if s.Articles == nil {
		s.Articles = []content.Article{}
	}
	if s.ArticleComments == nil {
		s.ArticleComments = []content.ArticleComment{}
	}
	if s.ForumThreads == nil {
		s.ForumThreads = []content.ForumThread{}
	}
	if s.ForumReplies == nil {
		s.ForumReplies = []content.ForumReply{}
	}
	if s.CastingApplications == nil {
		s.CastingApplications = []casting.Application{}
	}
	if s.FashionDayReservations == nil {
		s.FashionDayReservations = []operations.FashionDayReservation{}
	}
	if s.BookingRequests == nil {
		s.BookingRequests = []operations.BookingRequest{}
	}
	if s.ContactMessages == nil {
		s.ContactMessages = []operations.ContactMessage{}
	}
	if s.Absences == nil {
		s.Absences = []operations.Absence{}
	}
	if s.MonthlyPayments == nil {
		s.MonthlyPayments = []operations.MonthlyPayment{}
	}
	if s.RecoveryRequests == nil {
		s.RecoveryRequests = []operations.RecoveryRequest{}
	}
	if s.AgencyServices == nil {
		s.AgencyServices = []site.AgencyService{}
	}
	if s.AgencyTimeline == nil {
		s.AgencyTimeline = []site.TimelineEntry{}
	}
	if s.AgencyPartners == nil {
		s.AgencyPartners = []site.Partner{}
	}
	if s.AgencyAchievements == nil {
		s.AgencyAchievements = []site.Achievement{}
	}
	if s.SocialLinks == nil {
		s.SocialLinks = map[string]string{}
	}
	if s.SiteImages == nil {
		s.SiteImages = map[string]string{}
	}
	if s.NavLinks == nil {
		s.NavLinks = []site.NavLink{}
	}
	if s.PagesContent == nil {
		s.PagesContent = []site.PageContent{}
	}
	if s.JuryMembers == nil {
		s.JuryMembers = []site.JuryMember{}
	}
	if s.RegistrationStaff == nil {
		s.RegistrationStaff = []site.RegistrationStaff{}
	}
}

// Clone returns a copy with freshly allocated collections so callers can
// stage changes without touching the published snapshot. Entity values are
// copied by assignment; their inner slices are shared, which is safe under
// the replace-never-mutate convention.
func (s *Snapshot) Clone() *Snapshot {
	c := *s

	c.Models = append([]model.Model(nil), s.Models...)
	c.NewsItems = append([]content.NewsItem(nil), s.NewsItems...)
	c.Testimonials = append([]content.Testimonial(nil), s.Testimonials...)
	c.Articles = append([]content.Article(nil), s.Articles...)
	c.ArticleComments = append([]content.ArticleComment(nil), s.ArticleComments...)
	c.ForumThreads = append([]content.ForumThread(nil), s.ForumThreads...)
	c.ForumReplies = append([]content.ForumReply(nil), s.ForumReplies...)
	c.CastingApplications = append([]casting.Application(nil), s.CastingApplications...)
	c.FashionDayReservations = append([]operations.FashionDayReservation(nil), s.FashionDayReservations...)
	c.BookingRequests = append([]operations.BookingRequest(nil), s.BookingRequests...)
	c.ContactMessages = append([]operations.ContactMessage(nil), s.ContactMessages...)
	c.Absences = append([]operations.Absence(nil), s.Absences...)
	c.MonthlyPayments = append([]operations.MonthlyPayment(nil), s.MonthlyPayments...)
	c.RecoveryRequests = append([]operations.RecoveryRequest(nil), s.RecoveryRequests...)
	c.AgencyServices = append([]site.AgencyService(nil), s.AgencyServices...)
	c.AgencyTimeline = append([]site.TimelineEntry(nil), s.AgencyTimeline...)
	c.AgencyPartners = append([]site.Partner(nil), s.AgencyPartners...)
	c.AgencyAchievements = append([]site.Achievement(nil), s.AgencyAchievements...)
	c.NavLinks = append([]site.NavLink(nil), s.NavLinks...)
	c.PagesContent = append([]site.PageContent(nil), s.PagesContent...)
	c.JuryMembers = append([]site.JuryMember(nil), s.JuryMembers...)
	c.RegistrationStaff = append([]site.RegistrationStaff(nil), s.RegistrationStaff...)

	c.SocialLinks = make(map[string]string, len(s.SocialLinks))
	for k, v := range s.SocialLinks {
		c.SocialLinks[k] = v
	}
	c.SiteImages = make(map[string]string, len(s.SiteImages))
	for k, v := range s.SiteImages {
		c.SiteImages[k] = v
	}

	c.fillDefaults()
	return &c
}
