package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

type Categories struct {
	Jobs         []string `yaml:"jobs" json:"jobs"`
	JobTypes     []string `yaml:"jobTypes" json:"jobTypes"`
	Courses      []string `yaml:"courses" json:"courses"`
	CourseLevels []string `yaml:"courseLevels" json:"courseLevels"`
	Legal        []string `yaml:"legal" json:"legal"`
	Stories      []string `yaml:"stories" json:"stories"`
	Forum        []string `yaml:"forum" json:"forum"`
	Health       []string `yaml:"health" json:"health"`
	Safety       []string `yaml:"safety" json:"safety"`
}

type Pagination struct {
	Jobs    int `yaml:"jobs" json:"jobs"`
	Courses int `yaml:"courses" json:"courses"`
	Stories int `yaml:"stories" json:"stories"`
	Posts   int `yaml:"posts" json:"posts"`
	Mentors int `yaml:"mentors" json:"mentors"`
}

type Uploads struct {
	MaxFileSizeMB int      `yaml:"maxFileSizeMB" json:"maxFileSizeMB"`
	ImageTypes    []string `yaml:"imageTypes" json:"imageTypes"`
}

type EmergencyNumber struct {
	Service string `yaml:"service" json:"service"`
	Number  string `yaml:"number" json:"number"`
}

// Catalog is the static reference data served to clients: category lists,
// page sizes, upload limits and emergency numbers per country.
type Catalog struct {
	Categories Categories                   `yaml:"categories" json:"categories"`
	Pagination Pagination                   `yaml:"pagination" json:"pagination"`
	Uploads    Uploads                      `yaml:"uploads" json:"uploads"`
	Emergency  map[string][]EmergencyNumber `yaml:"emergency" json:"-"`
}

// Default parses the embedded catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	emergency := make(map[string][]EmergencyNumber, len(c.Emergency))
	for country, numbers := range c.Emergency {
		emergency[strings.ToLower(country)] = numbers
	}
	c.Emergency = emergency

	return &c, nil
}

// Lookup returns the emergency numbers of country, matched case-insensitively.
func (c *Catalog) Lookup(country string) ([]EmergencyNumber, bool) {
	numbers, ok := c.Emergency[strings.ToLower(strings.TrimSpace(country))]
	return numbers, ok
}

// Countries lists the countries with emergency numbers, sorted.
func (c *Catalog) Countries() []string {
	out := make([]string, 0, len(c.Emergency))
	for country := range c.Emergency {
		out = append(out, country)
	}
	slices.Sort(out)
	return out
}

// AllowsImage reports whether ext (with or without the dot) is an accepted
// image extension.
func (u Uploads) AllowsImage(ext string) bool {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	return slices.Contains(u.ImageTypes, ext)
}

func (u Uploads) MaxBytes() int64 {
	return int64(u.MaxFileSizeMB) * 1024 * 1024
}
