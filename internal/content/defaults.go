package content

// Default returns the content document seeded for a freshly registered
// owner: a complete placeholder site that renders non-empty in every
// section. Numbers are stored as float64 so an in-memory default compares
// equal to one that round-tripped through JSON.
func Default() Document {
	return Document{
		"seo": Section{
			"metaTitle":       "My Portfolio",
			"metaDescription": "Welcome to my portfolio",
			"ogImage":         "",
		},
		"analytics": Section{
			"totalViews": float64(0),
		},
		"header": Section{
			"logo":     "MyBrand",
			"logoType": "text",
			"links":    []any{"Home", "About", "Services", "Portfolio", "Blog"},
			"cta":      "Contact",
		},
		"hero": Section{
			"badge":        "Welcome",
			"titleLine1":   "I'm a Creator",
			"titleLine2":   "Digital Designer",
			"subtitle":     "This is your new portfolio. Edit this text in the admin panel to tell your story.",
			"ctaText":      "Download Resume",
			"image":        "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?auto=format&fit=crop&q=80&w=800",
			"contactEmail": "email@example.com",
			"contactPhone": "+1 234 567 890",
			"website":      "www.mysite.com",
		},
		"about": Section{
			"greeting":    "Hello, I'm",
			"name":        "Your Name",
			"prefix":      "I'm a Freelance",
			"role1":       "Designer",
			"role2":       "Developer",
			"suffix":      "based in New York.",
			"description": "Passionate about building great digital experiences. Edit this section to describe your background and skills.",
			"buttonText":  "Say Hello!",
			"stats": map[string]any{
				"experience": "5 Y.",
				"projects":   "100+",
				"clients":    "20",
			},
			"statsLabels": map[string]any{
				"experience": "Experience",
				"projects":   "Projects Completed",
				"clients":    "Happy Clients",
			},
			"image": "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&q=80&w=800",
		},
		"services": Section{
			"badge":      "my services",
			"title":      "What I can do",
			"subtitle":   "for your business",
			"buttonText": "Get Started",
			"cards": []any{
				map[string]any{"id": float64(1), "title": "UI/UX Design", "description": "Creating intuitive and beautiful user interfaces.", "iconType": "layout"},
				map[string]any{"id": float64(2), "title": "Web Development", "description": "Building responsive and fast websites.", "iconType": "layers"},
				map[string]any{"id": float64(3), "title": "Consulting", "description": "Helping you make the right tech decisions.", "iconType": "settings"},
			},
		},
		"blog": Section{
			"title":         "Latest News",
			"subtitle":      "Thoughts on technology and design.",
			"commentsLabel": "Comments",
			"posts": []any{
				map[string]any{
					"id":       float64(1),
					"image":    "https://images.unsplash.com/photo-1451187580459-43490279c0fa?auto=format&fit=crop&q=80&w=600",
					"date":     "Oct 22, 2023",
					"comments": float64(5),
					"title":    "Welcome to my new blog",
					"body":     "<p>This is a sample post. You can edit it in the admin panel.</p>",
				},
			},
		},
		"cta": Section{
			"titleLine1":  "Have a project?",
			"titleLine2":  "Let's talk!",
			"description": "I am available for freelance work. Send me a message to get started.",
			"buttonText":  "Let's work Together",
		},
		"clients": Section{
			"title":    "Trusted By",
			"subtitle": "Companies I have worked with.",
			"logos": []any{
				map[string]any{"id": float64(1), "src": "https://upload.wikimedia.org/wikipedia/commons/thumb/2/2f/Google_2015_logo.svg/2560px-Google_2015_logo.svg.png", "alt": "Google"},
			},
		},
		"footer": Section{
			"socials": []any{
				map[string]any{"id": float64(1), "platform": "website", "url": "https://example.com"},
			},
		},
	}
}
