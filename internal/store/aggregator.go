package store

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/casting"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/content"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/model"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/operations"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/domain/site"
	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/repository/postgres"
)

// CollectionSource is the read surface the aggregator needs from the backend.
type CollectionSource interface {
	Rows(ctx context.Context, table string) ([]map[string]any, error)
	SingleRow(ctx context.Context, table string) (map[string]any, error)
	KeyValue(ctx context.Context, table string) (map[string]string, error)
}

// collectionReads is the number of independent queries one aggregation issues.
const collectionReads = 26

// Aggregator builds a Snapshot from one batch of concurrent collection reads.
//
// Failure semantics, in order of preference: a failed individual read leaves
// that section at its empty default; a failed singleton read leaves its
// zero-value shape; only when every read fails is the whole aggregation
// considered down, and the bundled fallback dataset is returned instead.
type Aggregator struct {
	source CollectionSource
}

func NewAggregator(source CollectionSource) *Aggregator {
	return &Aggregator{source: source}
}

// FetchSnapshot never returns an error: whatever happens, the caller gets a
// total snapshot it can render.
func (a *Aggregator) FetchSnapshot(ctx context.Context) *Snapshot {
	snap := &Snapshot{}
	var failed atomic.Int32

	// Each goroutine writes a distinct snapshot field; Wait orders the
	// writes before the reads below.
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		snap.Models = fetchList[model.Model](ctx, a.source, postgres.TableModels, &failed)
		return nil
	})
	g.Go(func() error {
		snap.NewsItems = fetchList[content.NewsItem](ctx, a.source, postgres.TableNewsItems, &failed)
		return nil
	})
	g.Go(func() error {
		snap.Testimonials = fetchList[content.Testimonial](ctx, a.source, postgres.TableTestimonials, &failed)
		return nil
	})
	g.Go(func() error {
		snap.Articles = fetchList[content.Article](ctx, a.source, postgres.TableArticles, &failed)
		return nil
	})
	g.Go(func() error {
		snap.ArticleComments = fetchList[content.ArticleComment](ctx, a.source, postgres.TableArticleComments, &failed)
		return nil
	})
	g.Go(func() error {
		snap.ForumThreads = fetchList[content.ForumThread](ctx, a.source, postgres.TableForumThreads, &failed)
		return nil
	})
	g.Go(func() error {
		snap.ForumReplies = fetchList[content.ForumReply](ctx, a.source, postgres.TableForumReplies, &failed)
		return nil
	})
	g.Go(func() error {
		snap.CastingApplications = fetchList[casting.Application](ctx, a.source, postgres.TableCastingApplications, &failed)
		return nil
	})
	g.Go(func() error {
		snap.FashionDayReservations = fetchList[operations.FashionDayReservation](ctx, a.source, postgres.TableFashionDayReservation, &failed)
		return nil
	})
	g.Go(func() error {
		snap.BookingRequests = fetchList[operations.BookingRequest](ctx, a.source, postgres.TableBookingRequests, &failed)
		return nil
	})
	g.Go(func() error {
		snap.ContactMessages = fetchList[operations.ContactMessage](ctx, a.source, postgres.TableContactMessages, &failed)
		return nil
	})
	g.Go(func() error {
		snap.Absences = fetchList[operations.Absence](ctx, a.source, postgres.TableAbsences, &failed)
		return nil
	})
	g.Go(func() error {
		snap.MonthlyPayments = fetchList[operations.MonthlyPayment](ctx, a.source, postgres.TableMonthlyPayments, &failed)
		return nil
	})
	g.Go(func() error {
		snap.RecoveryRequests = fetchList[operations.RecoveryRequest](ctx, a.source, postgres.TableRecoveryRequests, &failed)
		return nil
	})
	g.Go(func() error {
		snap.AgencyServices = fetchList[site.AgencyService](ctx, a.source, postgres.TableAgencyServices, &failed)
		return nil
	})
	g.Go(func() error {
		snap.AgencyTimeline = fetchList[site.TimelineEntry](ctx, a.source, postgres.TableAgencyTimeline, &failed)
		return nil
	})
	g.Go(func() error {
		snap.AgencyPartners = fetchList[site.Partner](ctx, a.source, postgres.TableAgencyPartners, &failed)
		return nil
	})
	g.Go(func() error {
		snap.AgencyAchievements = fetchList[site.Achievement](ctx, a.source, postgres.TableAgencyAchievements, &failed)
		return nil
	})
	g.Go(func() error {
		snap.NavLinks = fetchList[site.NavLink](ctx, a.source, postgres.TableNavLinks, &failed)
		return nil
	})
	g.Go(func() error {
		snap.PagesContent = fetchList[site.PageContent](ctx, a.source, postgres.TablePagesContent, &failed)
		return nil
	})
	g.Go(func() error {
		snap.JuryMembers = fetchList[site.JuryMember](ctx, a.source, postgres.TableJuryMembers, &failed)
		return nil
	})
	g.Go(func() error {
		snap.RegistrationStaff = fetchList[site.RegistrationStaff](ctx, a.source, postgres.TableRegistrationStaff, &failed)
		return nil
	})

	// Singleton sections degrade to their zero shape so a misconfigured
	// content table never takes down the rest of the page.
	g.Go(func() error {
		snap.SiteConfig = fetchSingle[site.SiteConfig](ctx, a.source, postgres.TableSiteConfig, &failed)
		return nil
	})
	g.Go(func() error {
		snap.AgencyInfo = fetchSingle[site.AgencyInfo](ctx, a.source, postgres.TableAgencyInfo, &failed)
		return nil
	})

	// Key-value sections fold into flat maps.
	g.Go(func() error {
		snap.SocialLinks = fetchKeyValue(ctx, a.source, postgres.TableSocialLinks, &failed)
		return nil
	})
	g.Go(func() error {
		snap.SiteImages = fetchKeyValue(ctx, a.source, postgres.TableSiteImages, &failed)
		return nil
	})

	_ = g.Wait()

	if failed.Load() == collectionReads {
		return Fallback()
	}

	snap.fillDefaults()
	return snap
}

// fetchList reads a collection and decodes its normalized rows into typed
// entities. Any failure yields an empty list, never nil.
func fetchList[T any](ctx context.Context, src CollectionSource, table string, failed *atomic.Int32) []T {
	records, err := src.Rows(ctx, table)
	if err != nil {
		failed.Add(1)
		return []T{}
	}
	return decodeList[T](records)
}

func fetchSingle[T any](ctx context.Context, src CollectionSource, table string, failed *atomic.Int32) T {
	var out T
	record, err := src.SingleRow(ctx, table)
	if err != nil {
		failed.Add(1)
		return out
	}
	data, err := json.Marshal(record)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(data, &out)
	return out
}

func fetchKeyValue(ctx context.Context, src CollectionSource, table string, failed *atomic.Int32) map[string]string {
	kv, err := src.KeyValue(ctx, table)
	if err != nil {
		failed.Add(1)
		return map[string]string{}
	}
	if kv == nil {
		kv = map[string]string{}
	}
	return kv
}

func decodeList[T any](records []map[string]any) []T {
	out := []T{}
	if len(records) == 0 {
		return out
	}
	data, err := json.Marshal(records)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(data, &out)
	if out == nil {
		out = []T{}
	}
	return out
}
