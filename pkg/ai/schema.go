package ai

import "google.golang.org/genai"

// resumeSchema is the structured-output contract handed to Gemini. It
// mirrors model.ResumeData field for field so a conforming response decodes
// straight into the data model.
func resumeSchema() *genai.Schema {
	str := func() *genai.Schema { return &genai.Schema{Type: genai.TypeString} }
	strArray := func(desc string) *genai.Schema {
		return &genai.Schema{Type: genai.TypeArray, Description: desc, Items: str()}
	}

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"fullName": str(),
			"jobTitle": str(),
			"contact": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"email":    str(),
					"phone":    str(),
					"location": str(),
					"linkedin": str(),
					"website":  str(),
				},
				Required: []string{"email", "phone", "location"},
			},
			"summary": str(),
			"experience": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"company":     str(),
						"role":        str(),
						"startDate":   str(),
						"endDate":     str(),
						"description": strArray("List of 3-5 bullet points describing achievements and responsibilities."),
					},
					Required: []string{"company", "role", "startDate", "endDate", "description"},
				},
			},
			"education": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"institution": str(),
						"degree":      str(),
						"year":        str(),
					},
					Required: []string{"institution", "degree", "year"},
				},
			},
			"skills": {
				Type:        genai.TypeArray,
				Description: "Group skills by category (e.g., Languages, Tools, Frameworks)",
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category": str(),
						"items":    strArray(""),
					},
					Required: []string{"category", "items"},
				},
			},
			"projects": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":         str(),
						"technologies": str(),
						"description":  strArray(""),
						"link":         str(),
					},
					Required: []string{"name", "technologies", "description"},
				},
			},
			"certifications": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":   str(),
						"issuer": str(),
						"year":   str(),
					},
					Required: []string{"name", "issuer", "year"},
				},
			},
			"languages": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"language":    str(),
						"proficiency": str(),
					},
					Required: []string{"language", "proficiency"},
				},
			},
			"customSections": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"id":    str(),
						"title": str(),
						"items": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"title":       str(),
									"subtitle":    str(),
									"date":        str(),
									"description": strArray(""),
								},
								Required: []string{"title", "description"},
							},
						},
					},
					Required: []string{"id", "title", "items"},
				},
			},
		},
		Required: []string{"fullName", "jobTitle", "contact", "summary", "experience", "education", "skills", "projects"},
	}
}
