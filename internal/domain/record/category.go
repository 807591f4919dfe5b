package record

import (
	"strings"

	"alcatelz/internal/domain/search"
)

// Category groups resources by their categoryName.
type Category struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`
}

// fallbackCategories are listed when no resource carries a category.
var fallbackCategories = []Category{
	{Name: "General", Description: "A collection of miscellaneous resources for all interests."},
	{Name: "Tutorials", Description: "Step-by-step guides and how-tos for learning new skills."},
	{Name: "Design", Description: "Inspiration and tools for creative design projects."},
	{Name: "Coding", Description: "Resources for programmers and developers."},
	{Name: "Productivity", Description: "Tips and tools to boost your efficiency."},
	{Name: "Business", Description: "Strategies and insights for entrepreneurs and professionals."},
	{Name: "Education", Description: "Materials for teaching and learning."},
	{Name: "Technology", Description: "Latest trends and tools in tech."},
	{Name: "Science", Description: "Discoveries and studies in the scientific world."},
	{Name: "Health", Description: "Guides for wellness and healthy living."},
	{Name: "Lifestyle", Description: "Ideas for enhancing your daily life."},
	{Name: "Art", Description: "Resources for artists and art enthusiasts."},
	{Name: "Music", Description: "Everything from theory to production for musicians."},
	{Name: "Photography", Description: "Tips and techniques for photographers."},
	{Name: "Writing", Description: "Tools and inspiration for writers."},
	{Name: "Research", Description: "Methods and findings for researchers."},
	{Name: "Development", Description: "Resources for software and app development."},
	{Name: "Marketing", Description: "Strategies to promote and grow your brand."},
	{Name: "Management", Description: "Leadership and organizational skills."},
	{Name: "Other", Description: "Unique resources that don't fit elsewhere."},
}

// FallbackCategories returns a copy of the built-in category list.
func FallbackCategories() []Category {
	out := make([]Category, len(fallbackCategories))
	copy(out, fallbackCategories)
	return out
}

// Describe returns the description of a category name.
func Describe(name string) string {
	for _, c := range fallbackCategories {
		if search.EqualFold(c.Name, name) {
			return c.Description
		}
	}
	return "Resources for " + strings.ToLower(strings.TrimSpace(name)) + "."
}

// DeriveCategories collects the distinct category names of records in order
// of first appearance. Names differing only in case are one category.
func DeriveCategories(records []Record) []Category {
	var out []Category
	index := make(map[string]int)
	for _, r := range records {
		name := strings.TrimSpace(r.CategoryName)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			out[i].Count++
			continue
		}
		index[key] = len(out)
		out = append(out, Category{Name: name, Description: Describe(name), Count: 1})
	}
	return out
}
