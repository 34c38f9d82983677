package casting

// Status is the admin-driven lifecycle state of an application. Accepté and
// Refusé are terminal by convention only; transitions out of them are not
// rejected.
type Status string

const (
	StatusNew         Status = "Nouveau"
	StatusPreselected Status = "Présélectionné"
	StatusAccepted    Status = "Accepté"
	StatusRefused     Status = "Refusé"
)

// ExperienceLevel is the applicant's self-declared experience.
type ExperienceLevel string

const (
	ExperienceNone         ExperienceLevel = "none"
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceProfessional ExperienceLevel = "professional"
)

// Application is a prospective-model submission from the public casting form.
type Application struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	BirthDate   string          `json:"birthDate"`
	Gender      string          `json:"gender"`
	City        string          `json:"city"`
	Nationality string          `json:"nationality"`
	Height      string          `json:"height"`
	Weight      string          `json:"weight"`
	Bust        string          `json:"bust"`
	Waist       string          `json:"waist"`
	Hips        string          `json:"hips"`
	ShoeSize    string          `json:"shoeSize"`
	Experience  ExperienceLevel `json:"experience"`
	Status      Status          `json:"status"`
	PhotoURLs   []string        `json:"photoUrls"`
	SubmittedAt string          `json:"submittedAt"`
}
