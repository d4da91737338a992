package directory

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	defaultCategories = []string{
		"Hardware",
		"Software",
		"Conexão com Internet",
		"Acessos",
		"Sistemas",
		"Segurança",
		"Impressora",
		"Telefone/Celular",
		"Outros",
	}
	defaultStaff = []string{
		"john.doe@company.com",
		"jane.smith@company.com",
		"mike.wilson@company.com",
	}
	defaultEscalationContact = "suporteTi@email.com.br"
)

// Directory is the lookup source for ticket categories and the IT staff roster.
type Directory struct {
	categories []string
	staff      []string
	escalation string
}

// fileFormat models directory.yml.
type fileFormat struct {
	Categories        []string `yaml:"categories"`
	Staff             []string `yaml:"staff"`
	EscalationContact string   `yaml:"escalation_contact"`
}

// New builds a directory from explicit values.
func New(categories, staff []string, escalation string) (*Directory, error) {
	d := &Directory{
		categories: normalize(categories),
		staff:      normalize(staff),
		escalation: strings.TrimSpace(escalation),
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Default returns the built-in categories, roster and escalation contact.
func Default() *Directory {
	return &Directory{
		categories: append([]string(nil), defaultCategories...),
		staff:      append([]string(nil), defaultStaff...),
		escalation: defaultEscalationContact,
	}
}

// Load reads the directory file at path. An empty path yields Default.
func Load(path string) (*Directory, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", path, err)
	}
	return FromYAML(data)
}

// FromYAML parses a directory document. Omitted sections fall back to defaults.
func FromYAML(data []byte) (*Directory, error) {
	var f fileFormat
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse directory: %w", err)
	}
	if len(f.Categories) == 0 {
		f.Categories = defaultCategories
	}
	if len(f.Staff) == 0 {
		f.Staff = defaultStaff
	}
	if strings.TrimSpace(f.EscalationContact) == "" {
		f.EscalationContact = defaultEscalationContact
	}
	return New(f.Categories, f.Staff, f.EscalationContact)
}

// Validate ensures the directory can back the ticket forms.
func (d *Directory) Validate() error {
	if len(d.categories) == 0 {
		return fmt.Errorf("directory.categories is required")
	}
	if len(d.staff) == 0 {
		return fmt.Errorf("directory.staff is required")
	}
	seen := make(map[string]struct{}, len(d.staff))
	for _, s := range d.staff {
		if !strings.Contains(s, "@") {
			return fmt.Errorf("staff entry %q is not an email", s)
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("staff entry %q listed twice", s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// Categories returns the selectable ticket categories in display order.
func (d *Directory) Categories() []string {
	return append([]string(nil), d.categories...)
}

// Staff returns the IT executives tickets can be assigned to.
func (d *Directory) Staff() []string {
	return append([]string(nil), d.staff...)
}

// EscalationContact is shown to clients who need urgent help.
func (d *Directory) EscalationContact() string {
	return d.escalation
}

func (d *Directory) HasCategory(category string) bool {
	for _, c := range d.categories {
		if c == category {
			return true
		}
	}
	return false
}

func (d *Directory) IsStaff(email string) bool {
	_, ok := d.LookupStaff(email)
	return ok
}

// LookupStaff returns the roster spelling of email, matched case-insensitively.
func (d *Directory) LookupStaff(email string) (string, bool) {
	email = strings.TrimSpace(email)
	for _, s := range d.staff {
		if strings.EqualFold(s, email) {
			return s, true
		}
	}
	return "", false
}

func normalize(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
