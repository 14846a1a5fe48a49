// Package templates renders customer notifications from an embedded, localized catalog.
package templates

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/muhammadheryan/home-service/constant"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

//go:embed layout.html
var layoutHTML string

// Message is a rendered notification. Body is HTML for email and plain text for SMS.
type Message struct {
	Subject string
	Body    string
}

type section struct {
	Subject string   `yaml:"subject"`
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
}

type locale struct {
	Direction         string                            `yaml:"direction"`
	Greeting          string                            `yaml:"greeting"`
	GreetingAnonymous string                            `yaml:"greeting_anonymous"`
	Contact           string                            `yaml:"contact"`
	Signature         string                            `yaml:"signature"`
	Verification      section                           `yaml:"verification"`
	InquiryCode       section                           `yaml:"inquiry_code"`
	StatusUpdate      section                           `yaml:"status_update"`
	FieldUpdate       section                           `yaml:"field_update"`
	AdminMessage      section                           `yaml:"admin_message"`
	Statuses          map[constant.ServiceStatus]string `yaml:"statuses"`
	Actions           map[constant.FieldAction]string   `yaml:"actions"`
}

type layoutData struct {
	Dir       string
	Heading   string
	Greeting  string
	Lines     []string
	Code      string
	Contact   string
	Signature string
}

type Renderer struct {
	locales   map[string]*locale
	supported []language.Tag
	matcher   language.Matcher
	layout    *template.Template
}

// New loads the embedded catalog. defaultLocale is used when a request locale
// matches nothing in the catalog.
func New(defaultLocale string) (*Renderer, error) {
	return newRenderer(catalogYAML, defaultLocale)
}

func newRenderer(raw []byte, defaultLocale string) (*Renderer, error) {
	locales := make(map[string]*locale)
	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(&locales); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	if _, ok := locales[defaultLocale]; !ok {
		return nil, fmt.Errorf("default locale %q missing from catalog", defaultLocale)
	}

	// the matcher falls back to the first tag
	supported := []language.Tag{language.Make(defaultLocale)}
	for name, loc := range locales {
		if err := loc.validate(); err != nil {
			return nil, fmt.Errorf("locale %s: %w", name, err)
		}
		if name != defaultLocale {
			supported = append(supported, language.Make(name))
		}
	}

	layout, err := template.New("layout").Parse(layoutHTML)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		locales:   locales,
		supported: supported,
		matcher:   language.NewMatcher(supported),
		layout:    layout,
	}, nil
}

func (l *locale) validate() error {
	for _, s := range constant.ServiceStatuses {
		if l.Statuses[s] == "" {
			return fmt.Errorf("missing narrative for status %s", s)
		}
	}
	for _, a := range constant.FieldActions {
		if l.Actions[a] == "" {
			return fmt.Errorf("missing narrative for action %s", a)
		}
	}
	for name, s := range map[string]section{
		"verification":  l.Verification,
		"inquiry_code":  l.InquiryCode,
		"status_update": l.StatusUpdate,
		"field_update":  l.FieldUpdate,
		"admin_message": l.AdminMessage,
	} {
		if s.Subject == "" || len(s.Lines) == 0 {
			return fmt.Errorf("section %s is incomplete", name)
		}
	}
	return nil
}

// Locale resolves a BCP-47 tag or Accept-Language value to a catalog locale.
func (r *Renderer) Locale(tag string) string {
	tags, _, err := language.ParseAcceptLanguage(tag)
	if err != nil || len(tags) == 0 {
		tags = []language.Tag{language.Make(tag)}
	}
	_, idx, _ := r.matcher.Match(tags...)
	base, _ := r.supported[idx].Base()
	return base.String()
}

func (r *Renderer) get(tag string) *locale {
	return r.locales[r.Locale(tag)]
}

// Narrative is the system message stored on a record for a status.
func (r *Renderer) Narrative(tag string, status constant.ServiceStatus) string {
	return r.get(tag).Statuses[status]
}

// ActionNarrative is the system message stored on a record for a field update.
func (r *Renderer) ActionNarrative(tag string, action constant.FieldAction) string {
	return r.get(tag).Actions[action]
}

func (r *Renderer) Verification(tag string, channel constant.Channel, code string, ttl time.Duration) (Message, error) {
	loc := r.get(tag)
	minutes := strconv.Itoa(int(ttl.Round(time.Minute) / time.Minute))
	return r.render(loc, channel, loc.Verification, "", code, strings.NewReplacer("{minutes}", minutes))
}

func (r *Renderer) InquiryCode(tag string, channel constant.Channel, fullName, code string) (Message, error) {
	loc := r.get(tag)
	return r.render(loc, channel, loc.InquiryCode, fullName, code, nil)
}

func (r *Renderer) StatusUpdate(tag string, channel constant.Channel, fullName string, status constant.ServiceStatus) (Message, error) {
	loc := r.get(tag)
	return r.render(loc, channel, loc.StatusUpdate, fullName, "", strings.NewReplacer("{narrative}", loc.Statuses[status]))
}

func (r *Renderer) FieldUpdate(tag string, channel constant.Channel, fullName string, action constant.FieldAction) (Message, error) {
	loc := r.get(tag)
	return r.render(loc, channel, loc.FieldUpdate, fullName, "", strings.NewReplacer("{narrative}", loc.Actions[action]))
}

func (r *Renderer) AdminMessage(tag string, channel constant.Channel, fullName, body string) (Message, error) {
	loc := r.get(tag)
	return r.render(loc, channel, loc.AdminMessage, fullName, "", strings.NewReplacer("{body}", body))
}

func (r *Renderer) render(loc *locale, channel constant.Channel, s section, fullName, code string, vars *strings.Replacer) (Message, error) {
	greeting := loc.GreetingAnonymous
	if name := strings.TrimSpace(fullName); name != "" {
		greeting = strings.ReplaceAll(loc.Greeting, "{name}", name)
	}

	lines := make([]string, 0, len(s.Lines))
	for _, l := range s.Lines {
		if vars != nil {
			l = vars.Replace(l)
		}
		lines = append(lines, l)
	}

	if channel == constant.ChannelPhone {
		parts := append([]string{greeting}, lines...)
		if code != "" {
			parts = append(parts, code)
		}
		parts = append(parts, loc.Signature)
		return Message{Subject: s.Subject, Body: strings.Join(parts, "\n")}, nil
	}

	var buf bytes.Buffer
	err := r.layout.Execute(&buf, layoutData{
		Dir:       loc.Direction,
		Heading:   s.Heading,
		Greeting:  greeting,
		Lines:     lines,
		Code:      code,
		Contact:   loc.Contact,
		Signature: loc.Signature,
	})
	if err != nil {
		return Message{}, err
	}
	return Message{Subject: s.Subject, Body: buf.String()}, nil
}
