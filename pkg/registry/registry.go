package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/agencysite/pkg/slug"
	"github.com/dmitrymomot/agencysite/pkg/validator"
)

// ServiceOffering is one selectable service category.
type ServiceOffering struct {
	ID          string `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description,omitempty"`
}

// OfficeLocation is informational contact data for one studio.
type OfficeLocation struct {
	Region       string `yaml:"region" json:"region"`
	CountryLabel string `yaml:"country_label" json:"country_label"`
	CountryCode  string `yaml:"country_code" json:"country_code"`
	OfficeName   string `yaml:"office_name" json:"office_name"`
	Email        string `yaml:"email" json:"email"`
	Phone        string `yaml:"phone" json:"phone"`
	Hours        string `yaml:"hours" json:"hours"`
}

type CompanyInfo struct {
	Name              string `yaml:"name" json:"name"`
	Tagline           string `yaml:"tagline" json:"tagline"`
	Website           string `yaml:"website" json:"website"`
	MainEmail         string `yaml:"main_email" json:"main_email"`
	ResponseTimeLabel string `yaml:"response_time_label" json:"response_time_label"`
}

// Data is the raw registry content as declared in YAML.
type Data struct {
	Company  CompanyInfo       `yaml:"company"`
	Services []ServiceOffering `yaml:"services"`
	Offices  []OfficeLocation  `yaml:"offices"`
}

// Registry is immutable reference data built once at startup and passed to
// whatever needs it. Accessors return copies, so callers cannot mutate it.
type Registry struct {
	company  CompanyInfo
	services []ServiceOffering
	offices  []OfficeLocation
	titles   []string
	byID     map[string]int
}

// New checks data and builds a Registry from a private copy of it.
// Services without an ID get one derived from their title.
func New(data Data) (*Registry, error) {
	if strings.TrimSpace(data.Company.Name) == "" {
		return nil, fmt.Errorf("%w: company name is empty", ErrInvalidCompany)
	}
	if !validator.IsEmail(data.Company.MainEmail) {
		return nil, fmt.Errorf("%w: main email %q is not a valid address", ErrInvalidCompany, data.Company.MainEmail)
	}
	if len(data.Services) == 0 {
		return nil, ErrNoServices
	}

	r := &Registry{
		company:  data.Company,
		services: make([]ServiceOffering, 0, len(data.Services)),
		offices:  slices.Clone(data.Offices),
		titles:   make([]string, 0, len(data.Services)),
		byID:     make(map[string]int, len(data.Services)),
	}

	for i, svc := range data.Services {
		svc.Title = strings.TrimSpace(svc.Title)
		svc.Description = strings.TrimSpace(svc.Description)
		if svc.Title == "" {
			return nil, fmt.Errorf("%w: service #%d has an empty title", ErrInvalidService, i)
		}
		if svc.ID == "" {
			svc.ID = slug.Make(svc.Title)
		}
		if !slug.IsValid(svc.ID) {
			return nil, fmt.Errorf("%w: service id %q is not a slug", ErrInvalidService, svc.ID)
		}
		if _, dup := r.byID[svc.ID]; dup {
			return nil, fmt.Errorf("%w: id %q", ErrDuplicateService, svc.ID)
		}
		if slices.Contains(r.titles, svc.Title) {
			return nil, fmt.Errorf("%w: title %q", ErrDuplicateService, svc.Title)
		}

		r.byID[svc.ID] = len(r.services)
		r.services = append(r.services, svc)
		r.titles = append(r.titles, svc.Title)
	}

	for i, office := range r.offices {
		if strings.TrimSpace(office.OfficeName) == "" {
			return nil, fmt.Errorf("%w: office #%d has an empty name", ErrInvalidOffice, i)
		}
		if !validator.IsEmail(office.Email) {
			return nil, fmt.Errorf("%w: %s email %q is not a valid address", ErrInvalidOffice, office.OfficeName, office.Email)
		}
	}

	return r, nil
}

// ListServices returns the service offerings in declaration order.
func (r *Registry) ListServices() []ServiceOffering {
	return slices.Clone(r.services)
}

// ListOfficeLocations returns the offices in declaration order.
func (r *Registry) ListOfficeLocations() []OfficeLocation {
	return slices.Clone(r.offices)
}

func (r *Registry) CompanyInfo() CompanyInfo {
	return r.company
}

// ServiceTitles returns the service titles in declaration order. These are
// the only non-empty values the contact form accepts for a service type.
func (r *Registry) ServiceTitles() []string {
	return slices.Clone(r.titles)
}

func (r *Registry) ServiceByID(id string) (ServiceOffering, bool) {
	i, ok := r.byID[id]
	if !ok {
		return ServiceOffering{}, false
	}
	return r.services[i], true
}
