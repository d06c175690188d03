package content

import (
	"io"
	"log"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/orbit-defense/parameter"
	"github.com/lixenwraith/orbit-defense/vmath"
)

// FallbackTemplates is the built-in set used when the source is missing or malformed
// Spans hazardous, benign and every size class
func FallbackTemplates() []Template {
	return []Template{
		{ID: "fallback-hazard-large", Name: "Apophis Analog", SizeClass: SizeLarge, Hazardous: true},
		{ID: "fallback-hazard-small", Name: "Chelyabinsk Analog", SizeClass: SizeSmall, Hazardous: true},
		{ID: "fallback-benign-medium", Name: "Bennu Analog", SizeClass: SizeMedium, Hazardous: false},
		{ID: "fallback-benign-small", Name: "Itokawa Analog", SizeClass: SizeSmall, Hazardous: false},
		{ID: "fallback-hazard-medium", Name: "Didymos Analog", SizeClass: SizeMedium, Hazardous: true},
	}
}

// Pool holds the sanitized templates the wave director picks from
type Pool struct {
	hazardous []Template
	benign    []Template
	fallback  bool
	rng       *vmath.FastRand
}

// NewPool loads and sanitizes templates from src, substituting the fallback set when
// the source errors or yields nothing usable. Never fails
func NewPool(src Source, rng *vmath.FastRand, logger *log.Logger) *Pool {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}

	var raw []Template
	var err error
	if src == nil {
		err = ErrEmptySource
	} else {
		raw, err = src.Templates()
	}

	valid := Sanitize(raw)
	p := &Pool{rng: rng}

	switch {
	case err != nil:
		logger.Printf("Template source failed, using %d fallback templates: %v", len(FallbackTemplates()), err)
		valid = FallbackTemplates()
		p.fallback = true
	case len(valid) == 0:
		logger.Printf("Template source had no valid entries (%d raw), using fallback templates", len(raw))
		valid = FallbackTemplates()
		p.fallback = true
	default:
		logger.Printf("Loaded %d threat templates (%d dropped)", len(valid), len(raw)-len(valid))
	}

	for _, t := range valid {
		if t.Hazardous {
			p.hazardous = append(p.hazardous, t)
		} else {
			p.benign = append(p.benign, t)
		}
	}
	return p
}

// Sanitize drops malformed templates, normalizes names and size classes, removes
// duplicate ids and bounds the list to MaxTemplates
func Sanitize(raw []Template) []Template {
	seen := make(map[string]struct{}, len(raw))
	out := make([]Template, 0, len(raw))

	for _, t := range raw {
		if len(out) >= parameter.MaxTemplates {
			break
		}

		id := strings.TrimSpace(t.ID)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}

		size, ok := ParseSizeClass(string(t.SizeClass))
		if !ok {
			continue
		}

		name := strings.TrimSpace(t.Name)
		if name == "" {
			name = id
		}
		name = truncateName(name, parameter.MaxTemplateNameLength)

		seen[id] = struct{}{}
		out = append(out, Template{ID: id, Name: name, SizeClass: size, Hazardous: t.Hazardous})
	}
	return out
}

// truncateName cuts s to at most limit bytes without splitting a rune
func truncateName(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// Pick returns a template of the requested hazard class
// Falls back to the other class when the pool lacks the requested one
func (p *Pool) Pick(hazardous bool) Template {
	primary, secondary := p.benign, p.hazardous
	if hazardous {
		primary, secondary = p.hazardous, p.benign
	}
	if len(primary) > 0 {
		return primary[p.rng.Intn(len(primary))]
	}
	return secondary[p.rng.Intn(len(secondary))]
}

// Len returns the number of templates in the pool
func (p *Pool) Len() int {
	return len(p.hazardous) + len(p.benign)
}

// HasHazardous reports whether any hazardous template is available
func (p *Pool) HasHazardous() bool {
	return len(p.hazardous) > 0
}

// UsingFallback reports whether the built-in set replaced the source
func (p *Pool) UsingFallback() bool {
	return p.fallback
}
