package content

import (
	"github.com/shopspring/decimal"
)

// Site is the full set of static content shown on the landing page.
type Site struct {
	Brand        Brand             `yaml:"brand"`
	Disclaimer   string            `yaml:"disclaimer"`
	Nav          []NavItem         `yaml:"nav" validate:"min=1,dive"`
	Hero         Hero              `yaml:"hero"`
	Challenges   []Challenge       `yaml:"challenges" validate:"dive"`
	Demo         Demo              `yaml:"demo"`
	Testimonials []Testimonial     `yaml:"testimonials" validate:"dive"`
	Pricing      Pricing           `yaml:"pricing"`
	FAQs         []FAQ             `yaml:"faqs" validate:"dive"`
	Glossary     map[string]string `yaml:"glossary"`
	Footer       string            `yaml:"footer"`
}

// Brand is the academy name shown in the navbar and page titles.
type Brand struct {
	Name    string `yaml:"name" validate:"required"`
	Tagline string `yaml:"tagline"`
}

// NavItem is an in-page navigation link. Href must be a "#section" anchor.
type NavItem struct {
	Name string `yaml:"name" validate:"required"`
	Href string `yaml:"href" validate:"required,startswith=#"`
}

// Anchor returns the section id the item points to.
func (n NavItem) Anchor() string {
	return n.Href[1:]
}

type Hero struct {
	Eyebrow      string `yaml:"eyebrow"`
	Headline     string `yaml:"headline" validate:"required"`
	Highlight    string `yaml:"highlight"`
	Description  string `yaml:"description"`
	PrimaryCTA   string `yaml:"primary_cta"`
	SecondaryCTA string `yaml:"secondary_cta"`
	Stats        []Stat `yaml:"stats" validate:"dive"`
}

type Stat struct {
	Value string `yaml:"value" validate:"required"`
	Label string `yaml:"label" validate:"required"`
}

// Challenge pairs a learner problem with the academy's answer to it.
type Challenge struct {
	Icon     string `yaml:"icon"`
	Problem  string `yaml:"problem" validate:"required"`
	Solution string `yaml:"solution" validate:"required"`
}

// Demo describes the featured teacher profile.
type Demo struct {
	Heading    string   `yaml:"heading"`
	Teacher    string   `yaml:"teacher" validate:"required"`
	Title      string   `yaml:"title"`
	Bio        string   `yaml:"bio"`
	Image      string   `yaml:"image"`
	Highlights []string `yaml:"highlights"`
}

type Testimonial struct {
	Quote  string `yaml:"quote" validate:"required"`
	Author string `yaml:"author" validate:"required"`
	Role   string `yaml:"role"`
	Rating int    `yaml:"rating" validate:"omitempty,min=1,max=5"`
}

// Initials returns up to two leading letters of the author's name, used as an
// avatar fallback.
func (t Testimonial) Initials() string {
	var initials []rune
	start := true
	for _, r := range t.Author {
		if r == ' ' {
			start = true
			continue
		}
		if start && len(initials) < 2 {
			initials = append(initials, r)
		}
		start = false
	}
	return string(initials)
}

// Pricing groups the plan cards with the section copy.
type Pricing struct {
	Heading     string   `yaml:"heading"`
	Subheading  string   `yaml:"subheading"`
	Period      string   `yaml:"period"`
	Plans       []Plan   `yaml:"plans" validate:"min=1,dive"`
	Perks       []string `yaml:"perks"`
	SocialProof string   `yaml:"social_proof"`
	SupportURL  string   `yaml:"support_url"`
}

// Plan is a single pricing offer. Features are feature lines that may contain
// "**term**" spans.
type Plan struct {
	Title       string          `yaml:"title" validate:"required"`
	Price       decimal.Decimal `yaml:"price"`
	Features    []string        `yaml:"features" validate:"min=1,dive,required"`
	Highlighted bool            `yaml:"highlighted"`
	Discount    *Discount       `yaml:"discount"`
	CTA         string          `yaml:"cta"`
}

// Discount is present only on discounted plans.
type Discount struct {
	OriginalPrice decimal.Decimal `yaml:"original_price"`
	Label         string          `yaml:"label"`
}

// IsDiscounted reports whether the plan carries a discount.
func (p Plan) IsDiscounted() bool {
	return p.Discount != nil
}

// DiscountLabel returns the text for the discount badge, e.g. "20%". When the
// content does not name one it is derived from the original and current price.
func (p Plan) DiscountLabel() string {
	if p.Discount == nil {
		return ""
	}
	if p.Discount.Label != "" {
		return p.Discount.Label
	}
	original := p.Discount.OriginalPrice
	if !original.IsPositive() {
		return ""
	}
	pct := original.Sub(p.Price).Div(original).Mul(decimal.NewFromInt(100)).Round(0)
	return pct.String() + "%"
}

// CallToAction returns the plan's button text.
func (p Plan) CallToAction() string {
	if p.CTA == "" {
		return "Get Started"
	}
	return p.CTA
}

type FAQ struct {
	Question string `yaml:"question" validate:"required"`
	Answer   string `yaml:"answer" validate:"required"`
}
