package model

// DefaultResume returns the sample resume every session starts from. The
// caller owns the returned value; each call builds a fresh copy.
func DefaultResume() *ResumeData {
	return &ResumeData{
		FullName: "James Carter",
		JobTitle: "Senior Financial Analyst",
		Contact: Contact{
			Email:    "j.carter@fintech.io",
			Phone:    "+1 (212) 555-0199",
			Location: "New York, NY",
			LinkedIn: "linkedin.com/in/jamescarter-cfa",
			Website:  "jcarterfinance.com",
		},
		Summary: "CFA Charterholder with 6+ years of experience in financial modeling, equity research, and portfolio management. " +
			"Proven track record of identifying high-growth investment opportunities and optimizing asset allocation strategies. " +
			"Adept at leveraging Python and SQL for large-scale data analysis to drive investment decisions.",
		Experience: []ExperienceItem{
			{
				Company:   "Goldman Sachs",
				Role:      "Equity Research Associate",
				StartDate: "Jun 2021",
				EndDate:   "Present",
				Description: []string{
					"Conduct comprehensive fundamental analysis on TMT sector equities, contributing to coverage of 15+ large-cap stocks.",
					"Build and maintain complex financial models to forecast earnings and valuation multiples (DCF, Comparable Company Analysis).",
					"Publish quarterly research reports that are distributed to institutional clients managing over $5B in assets.",
					"Automated data extraction processes using Python, reducing manual data entry time by 40%.",
				},
			},
			{
				Company:   "JP Morgan Chase",
				Role:      "Financial Analyst",
				StartDate: "Jul 2018",
				EndDate:   "May 2021",
				Description: []string{
					"Supported the Wealth Management division in portfolio construction and rebalancing for high-net-worth individuals.",
					"Prepared monthly performance attribution reports and presented findings to senior portfolio managers.",
					"Collaborated with the risk management team to stress-test portfolios against various market scenarios.",
				},
			},
		},
		Education: []EducationItem{
			{Institution: "New York University (Stern)", Degree: "B.S. Finance & Data Science", Year: "2018"},
		},
		Skills: []SkillGroup{
			{Category: "Financial Analysis", Items: []string{"Financial Modeling", "Valuation (DCF, LBO)", "Risk Management", "Portfolio Strategy"}},
			{Category: "Technical Skills", Items: []string{"Python (Pandas, NumPy)", "SQL", "Tableau", "Bloomberg Terminal", "Excel VBA"}},
			{Category: "Soft Skills", Items: []string{"Presentation", "Client Relations", "Critical Thinking", "Team Leadership"}},
		},
		Projects: []ProjectItem{
			{
				Name:         "Algorithmic Trading Bot",
				Technologies: "Python, API Integration",
				Description: []string{
					"Developed a mean-reversion trading algorithm using Python backtested on 5 years of S&P 500 data.",
					"Achieved a Sharpe Ratio of 1.8 in simulated trading environments.",
				},
			},
		},
		Certifications: []CertificationItem{
			{Name: "Chartered Financial Analyst (CFA)", Issuer: "CFA Institute", Year: "2022"},
			{Name: "Financial Modeling & Valuation Analyst", Issuer: "CFI", Year: "2019"},
		},
		Languages: []LanguageItem{
			{Language: "English", Proficiency: "Native"},
			{Language: "Mandarin", Proficiency: "Professional Working"},
		},
		CustomSections: []CustomSection{
			{
				ID:    "awards",
				Title: "Awards & Honors",
				Items: []CustomSectionItem{
					{
						Title:       "Analyst of the Year",
						Subtitle:    "JP Morgan Chase",
						Date:        "2020",
						Description: []string{"Awarded for exceptional performance in Q4 2020 portfolio restructuring."},
					},
				},
			},
		},
	}
}
