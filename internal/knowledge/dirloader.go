package knowledge

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is one ingested knowledge file. Documents are produced by an
// upstream ingestion pipeline; this package only reads them.
type Document struct {
	Title    string   `yaml:"title"`
	Category string   `yaml:"category"`
	Summary  string   `yaml:"summary"`
	Topics   []string `yaml:"topics"`
}

// cimCategories is the canonical set of material categories a full CIM
// draws on, in document order. Gap analysis compares loaded documents
// against this list.
var cimCategories = []string{
	"financials",
	"business_overview",
	"products",
	"market",
	"competition",
	"team",
	"growth",
	"risks",
}

// categoryRecommendations suggests what to collect for each missing category.
var categoryRecommendations = map[string]string{
	"financials":        "Request 3 years of P&L, balance sheet, and the current-year budget.",
	"business_overview": "Request the company overview deck or latest board pack.",
	"products":          "Request product one-pagers or the pricing and packaging sheet.",
	"market":            "Request any commissioned market studies or cited analyst reports.",
	"competition":       "Request the competitive landscape the team uses internally.",
	"team":              "Request leadership bios and the current org chart.",
	"growth":            "Request the growth plan or pipeline model management stands behind.",
	"risks":             "Ask management for their top risks; check customer concentration first.",
}

// DirLoader reads knowledge documents from a directory of YAML files.
// A missing directory is treated as an empty knowledge base, not an error.
type DirLoader struct {
	docs []Document
}

// LoadDir parses every *.yaml / *.yml file under dir into a DirLoader.
// Unparseable files fail the load: a silently half-loaded knowledge base
// would poison every prompt built from it.
func LoadDir(dir string) (*DirLoader, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return &DirLoader{}, nil
		}
		return nil, fmt.Errorf("reading knowledge dir: %w", err)
	}

	l := &DirLoader{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", e.Name(), err)
		}
		var doc Document
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", e.Name(), err)
		}
		l.docs = append(l.docs, doc)
	}
	return l, nil
}

// Empty reports whether no documents are loaded.
func (l *DirLoader) Empty() bool {
	return len(l.docs) == 0
}

// DataSummary groups loaded documents by category and summarizes each group.
func (l *DirLoader) DataSummary() string {
	if len(l.docs) == 0 {
		return "No documents loaded."
	}

	byCategory := make(map[string][]Document)
	for _, d := range l.docs {
		byCategory[d.Category] = append(byCategory[d.Category], d)
	}

	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var b strings.Builder
	fmt.Fprintf(&b, "%d documents loaded across %d categories.\n", len(l.docs), len(categories))
	for _, c := range categories {
		fmt.Fprintf(&b, "%s:\n", c)
		for _, d := range byCategory[c] {
			if d.Summary != "" {
				fmt.Fprintf(&b, "- %s: %s\n", d.Title, d.Summary)
			} else {
				fmt.Fprintf(&b, "- %s\n", d.Title)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// DataGaps compares loaded categories against the canonical CIM category
// list and recommends what to collect for each missing one.
func (l *DirLoader) DataGaps() DataGaps {
	covered := make(map[string]bool)
	for _, d := range l.docs {
		covered[d.Category] = true
	}

	var gaps DataGaps
	for _, c := range cimCategories {
		if covered[c] {
			continue
		}
		gaps.MissingSections = append(gaps.MissingSections, c)
		if rec, ok := categoryRecommendations[c]; ok {
			gaps.Recommendations = append(gaps.Recommendations, rec)
		}
	}
	return gaps
}
