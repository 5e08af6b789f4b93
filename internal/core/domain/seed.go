package domain

// DefaultResume returns the built-in document the dashboard starts with when
// no seed file is configured. Every call returns fresh slices.
func DefaultResume() Resume {
	return Resume{
		Profile: Profile{
			Name:     "V Chaitanya Chowdari",
			Title:    "AI Generalist | AI Automation Expert | AI Agents Builder",
			Email:    "vchaitanya@chowdari.in",
			Phone:    "+91 98765 43210",
			Location: "Hyderabad, India",
			Website:  "https://chowdari.in",
			LinkedIn: "https://linkedin.com/in/v-chaitanya-chowdari-bb3733202",
			GitHub:   "https://github.com/vchaitanyachowdari",
			Twitter:  "https://x.com/vchaitanyachai",
			Summary: "Passionate AI Generalist and Full-Stack Developer with expertise in building " +
				"intelligent automation systems, AI agents, and scalable web applications.",
		},
		Skills: []Skill{
			{ID: 1, Category: "AI & ML", Name: "LLMs / GPT / Claude", Level: 95},
			{ID: 2, Category: "AI & ML", Name: "AI Agents & Automation", Level: 92},
			{ID: 3, Category: "AI & ML", Name: "LangChain / LlamaIndex", Level: 88},
			{ID: 4, Category: "Frontend", Name: "React / TypeScript", Level: 90},
			{ID: 5, Category: "Frontend", Name: "Vite / Next.js", Level: 85},
			{ID: 6, Category: "Backend", Name: "Node.js / Express", Level: 82},
			{ID: 7, Category: "Backend", Name: "Python / FastAPI", Level: 85},
			{ID: 8, Category: "DevOps", Name: "Docker / Kubernetes", Level: 75},
		},
		Experience: []Experience{
			{
				ID:          1,
				Company:     "TechVentures AI",
				Role:        "Senior AI Engineer",
				Period:      "Jan 2023 – Present",
				Location:    "Hyderabad, India",
				Description: "Led development of enterprise AI automation pipelines and multi-agent systems.",
				Highlights: []string{
					"Built RAG-based knowledge systems reducing support tickets by 40%",
					"Designed AI agent orchestration platform handling 10k+ daily tasks",
					"Led team of 5 engineers delivering AI features on schedule",
				},
			},
			{
				ID:          2,
				Company:     "DataSync Solutions",
				Role:        "Full Stack Developer",
				Period:      "Jun 2021 – Dec 2022",
				Location:    "Bangalore, India",
				Description: "Developed scalable React applications and REST APIs.",
				Highlights: []string{
					"Architected React component library used across 3 products",
					"Reduced API latency by 60% through caching and optimization",
				},
			},
		},
		Education: []Education{
			{
				ID:          1,
				Institution: "JNTU Hyderabad",
				Degree:      "B.Tech in Computer Science Engineering",
				Period:      "2017 – 2021",
				Location:    "Hyderabad, India",
				GPA:         "8.4 / 10.0",
				Description: "Specialized in Machine Learning and Data Science.",
			},
		},
		Projects: []Project{
			{
				ID:          1,
				Name:        "AutoAgent Platform",
				Tech:        "Python, LangChain, FastAPI, React",
				Period:      "2023",
				Link:        "https://github.com/vchaitanyachowdari",
				Description: "Autonomous AI agent platform for business process automation with 20+ integrations.",
			},
			{
				ID:          2,
				Name:        "Resume.AI Builder",
				Tech:        "React, TypeScript, OpenAI API, Vite",
				Period:      "2024",
				Link:        "https://resume.chowdari.in",
				Description: "AI-powered resume builder that generates tailored resumes using GPT-4.",
			},
		},
		Certifications: []Certification{
			{ID: 1, Name: "AWS Certified Solutions Architect", Issuer: "Amazon Web Services", Year: "2023", CredentialID: "AWS-SAA-C03-123456"},
			{ID: 2, Name: "TensorFlow Developer Certificate", Issuer: "Google", Year: "2022", CredentialID: "TF-DEV-789012"},
		},
	}
}
