package content

import (
	"fmt"

	"aicloudmania.dev/internal/models"
)

const unsplash = "https://images.unsplash.com/"

func unsplashImage(id string, w, h int) string {
	return fmt.Sprintf("%s%s?auto=format&fit=crop&w=%d&h=%d", unsplash, id, w, h)
}

// Default returns the built-in site content.
func Default() *models.Site {
	return &models.Site{
		Company: models.Company{
			Name:    "AiCloud Mania",
			Tagline: "Expert DevOps, Cloud & AI Solutions",
			Country: "India",
		},
		Hero: models.Hero{
			Headline:    "Expert DevOps, Cloud & AI Solutions",
			Subheadline: "From Startups to Enterprise – We Scale Your Technology Infrastructure",
			Credentials: "1+ Years Experience | 4 Expert Team Members | India's Premier Technology Partners",
			Image:       unsplashImage("photo-1600880292203-757bb62b4baf", 1000, 400),
			ImageAlt:    "Professional Indian business team in enterprise setting",
			Stats: []models.Stat{
				{Number: "15+", Label: "Projects Completed"},
				{Number: "4", Label: "Expert Team"},
				{Number: "100%", Label: "Client Satisfaction"},
				{Number: "24/7", Label: "Support"},
			},
			PrimaryCTA:   models.Link{Name: "Schedule Free Consultation", Href: "#contact"},
			SecondaryCTA: models.Link{Name: "View Our Portfolio", Href: "#portfolio"},
		},
		Services:     defaultServices(),
		Categories:   defaultCategories(),
		Technologies: defaultTechnologies(),
		About:        defaultAbout(),
		Projects:     defaultProjects(),
		Contact:      defaultContact(),
		Footer:       defaultFooter(),
	}
}

func defaultServices() []models.Service {
	return []models.Service{
		{
			ID:          "cloud-architecture",
			Title:       "Cloud Architecture & Migration",
			Description: "AWS, Azure, GCP implementations with serverless architecture, VPC design, and containerization strategies.",
			Features:    []string{"Multi-cloud strategies", "Hybrid solutions", "Infrastructure optimization"},
			Icon:        "cloud",
			Color:       "primary-blue",
		},
		{
			ID:          "ai-ml",
			Title:       "AI & Machine Learning Solutions",
			Description: "Custom ML model development, MLOps pipeline implementation, NLP, and computer vision automation.",
			Features:    []string{"TensorFlow & PyTorch", "MLOps automation", "Custom AI solutions"},
			Icon:        "brain",
			Color:       "accent-teal",
		},
		{
			ID:          "devops",
			Title:       "DevOps & Site Reliability",
			Description: "CI/CD pipeline design, Infrastructure as Code, Kubernetes orchestration, and 24/7 monitoring support.",
			Features:    []string{"Terraform & Ansible", "Kubernetes management", "24/7 SRE support"},
			Icon:        "settings",
			Color:       "success-green",
		},
		{
			ID:          "app-development",
			Title:       "Application Development",
			Description: "Full-stack development, microservices architecture, API development, and legacy system modernization.",
			Features:    []string{"Modern web frameworks", "API integration", "Legacy modernization"},
			Icon:        "code",
			Color:       "warning-amber",
		},
		{
			ID:          "data-engineering",
			Title:       "Data Engineering & Analytics",
			Description: "Data pipeline construction, warehouse implementation, business intelligence, and real-time analytics.",
			Features:    []string{"Big data processing", "BI dashboards", "Real-time analytics"},
			Icon:        "bar-chart",
			Color:       "purple",
		},
		{
			ID:          "cybersecurity",
			Title:       "Cybersecurity & Compliance",
			Description: "Zero-trust security implementation, audits, SOC2/GDPR/HIPAA compliance, and penetration testing.",
			Features:    []string{"Security audits", "Compliance frameworks", "Penetration testing"},
			Icon:        "shield",
			Color:       "red",
		},
		{
			ID:          "managed-services",
			Title:       "Managed Cloud Services",
			Description: "24/7 infrastructure monitoring, disaster recovery planning, performance optimization, and ongoing support.",
			Features:    []string{"Proactive monitoring", "Disaster recovery", "Performance optimization"},
			Icon:        "server",
			Color:       "indigo",
		},
		{
			ID:          "digital-transformation",
			Title:       "Digital Transformation",
			Description: "Technology strategy development, workflow automation, process optimization, and change management.",
			Features:    []string{"Strategy consulting", "Process automation", "Change management"},
			Icon:        "rocket",
			Color:       "pink",
		},
	}
}

func defaultCategories() []models.Category {
	return []models.Category{
		{ID: models.CategoryAll, Label: "All Technologies"},
		{ID: "cloud", Label: "Cloud Platforms"},
		{ID: "ai", Label: "AI/ML"},
		{ID: "devops", Label: "DevOps"},
		{ID: "database", Label: "Databases"},
	}
}

func defaultTechnologies() []models.Technology {
	return []models.Technology{
		{Name: "AWS", Category: "cloud", Icon: "amazon", Color: "orange-500"},
		{Name: "Azure", Category: "cloud", Icon: "cloud", Color: "blue-500"},
		{Name: "GCP", Category: "cloud", Icon: "googlecloud", Color: "red-500"},
		{Name: "Cloudflare", Category: "cloud", Icon: "cloudflare", Color: "orange-600"},

		{Name: "TensorFlow", Category: "ai", Icon: "tensorflow", Color: "orange-500"},
		{Name: "PyTorch", Category: "ai", Icon: "pytorch", Color: "red-500"},
		{Name: "Python", Category: "ai", Icon: "python", Color: "blue-500"},
		{Name: "Machine Learning", Category: "ai", Icon: "brain", Color: "green-500"},

		{Name: "Docker", Category: "devops", Icon: "docker", Color: "blue-500"},
		{Name: "Kubernetes", Category: "devops", Icon: "kubernetes", Color: "blue-600"},
		{Name: "Jenkins", Category: "devops", Icon: "jenkins", Color: "red-500"},
		{Name: "Git", Category: "devops", Icon: "git", Color: "orange-500"},

		{Name: "PostgreSQL", Category: "database", Icon: "postgresql", Color: "blue-500"},
		{Name: "MongoDB", Category: "database", Icon: "mongodb", Color: "green-500"},
		{Name: "Redis", Category: "database", Icon: "redis", Color: "red-500"},
		{Name: "Elasticsearch", Category: "database", Icon: "elasticsearch", Color: "yellow-500"},
	}
}

func defaultAbout() models.About {
	portrait := func(id string) string { return unsplashImage(id, 150, 150) }
	return models.About{
		Summary: "AiCloud Mania is dedicated to delivering enterprise-grade DevOps, Cloud, and AI solutions " +
			"that empower businesses to scale efficiently and innovate rapidly. We combine cutting-edge " +
			"technology with proven methodologies to drive digital transformation.",
		Image:    unsplashImage("photo-1558494949-ef010cbdcc31", 800, 600),
		ImageAlt: "Modern cloud computing data center with servers and networking equipment",
		Stats: []models.Stat{
			{Number: "50+", Label: "Technologies Mastered"},
			{Number: "99.9%", Label: "Uptime Guarantee"},
		},
		Values: []string{
			"Technical Excellence & Innovation Leadership",
			"Reliability & Trust in Every Project",
			"Client Success Focus & Partnership",
		},
		Team: []models.TeamMember{
			{
				Name:      "Ayan Khan",
				Role:      "Founder & Lead DevOps Engineer",
				Specialty: "Cloud Architecture, CI/CD Automation",
				Image:     portrait("photo-1507003211169-0a1dd7228f2d"),
				Color:     "primary-blue",
			},
			{
				Name:      "Priya Sharma",
				Role:      "AI/ML Engineer",
				Specialty: "Machine Learning, Data Science",
				Image:     portrait("photo-1438761681033-6461ffad8d80"),
				Color:     "accent-teal",
			},
			{
				Name:      "Rajesh Kumar",
				Role:      "Cloud Architect",
				Specialty: "AWS, Azure, Multi-cloud Solutions",
				Image:     portrait("photo-1472099645785-5658abf4ff4e"),
				Color:     "success-green",
			},
			{
				Name:      "Sneha Patel",
				Role:      "DevOps Specialist",
				Specialty: "Kubernetes, Infrastructure as Code",
				Image:     portrait("photo-1438761681033-6461ffad8d80"),
				Color:     "warning-amber",
			},
		},
	}
}

func defaultProjects() []models.Project {
	banner := func(id string) string { return unsplashImage(id, 800, 400) }
	return []models.Project{
		{
			ID:       "digital-banking-platform",
			Title:    "Digital Banking Platform Modernization",
			Category: "FinTech",
			Image:    banner("photo-1551650975-87deedd944c3"),
			Tags: []models.Tag{
				{Label: "FinTech", Color: "primary-blue"},
				{Label: "AWS", Color: "accent-teal"},
				{Label: "Kubernetes", Color: "success-green"},
			},
			Challenge: "Legacy banking system requiring cloud migration with zero downtime and enhanced security compliance.",
			Solution:  "Implemented AWS-based microservices architecture with Kubernetes orchestration and automated CI/CD pipelines.",
			Results: []string{
				"60% reduction in deployment time",
				"99.99% system uptime achieved",
				"SOC2 compliance certification",
				"40% cost optimization",
			},
		},
		{
			ID:       "ai-recommendation-engine",
			Title:    "AI-Powered Recommendation Engine",
			Category: "E-commerce",
			Image:    banner("photo-1460925895917-afdab827c52f"),
			Tags: []models.Tag{
				{Label: "E-commerce", Color: "purple-500"},
				{Label: "AI/ML", Color: "orange-500"},
				{Label: "Azure", Color: "blue-500"},
			},
			Challenge: "E-commerce platform needed personalized product recommendations to increase customer engagement and sales.",
			Solution:  "Developed custom ML models using TensorFlow and deployed on Azure with real-time data processing capabilities.",
			Results: []string{
				"35% increase in click-through rates",
				"25% boost in average order value",
				"Real-time processing under 100ms",
				"92% recommendation accuracy",
			},
		},
		{
			ID:       "hipaa-healthcare-platform",
			Title:    "HIPAA-Compliant Healthcare Platform",
			Category: "Healthcare",
			Image:    banner("photo-1551288049-bebda4e38f71"),
			Tags: []models.Tag{
				{Label: "Healthcare", Color: "green-500"},
				{Label: "Security", Color: "red-500"},
				{Label: "GCP", Color: "indigo-500"},
			},
			Challenge: "Healthcare provider needed secure, scalable platform for patient data management with strict compliance requirements.",
			Solution:  "Built HIPAA-compliant architecture on GCP with end-to-end encryption, audit trails, and automated security monitoring.",
			Results: []string{
				"HIPAA compliance certification",
				"Zero security incidents",
				"50% faster patient processing",
				"99.9% data availability",
			},
		},
		{
			ID:       "smart-manufacturing-iot",
			Title:    "Smart Manufacturing IoT Solution",
			Category: "Manufacturing",
			Image:    banner("photo-1454165804606-c3d57bc86b40"),
			Tags: []models.Tag{
				{Label: "Manufacturing", Color: "yellow-500"},
				{Label: "IoT", Color: "blue-600"},
				{Label: "Data Analytics", Color: "green-600"},
			},
			Challenge: "Manufacturing company required real-time equipment monitoring and predictive maintenance capabilities.",
			Solution:  "Deployed IoT sensors with cloud-based analytics platform for real-time monitoring and AI-powered predictive maintenance.",
			Results: []string{
				"30% reduction in downtime",
				"45% decrease in maintenance costs",
				"Real-time equipment visibility",
				"85% prediction accuracy",
			},
		},
	}
}

func defaultContact() models.ContactSection {
	return models.ContactSection{
		Services: []models.Option{
			{Value: "cloud-architecture", Label: "Cloud Architecture & Migration"},
			{Value: "ai-ml", Label: "AI & Machine Learning Solutions"},
			{Value: "devops", Label: "DevOps & Site Reliability"},
			{Value: "app-development", Label: "Application Development"},
			{Value: "data-engineering", Label: "Data Engineering & Analytics"},
			{Value: "cybersecurity", Label: "Cybersecurity & Compliance"},
			{Value: "managed-services", Label: "Managed Cloud Services"},
			{Value: "digital-transformation", Label: "Digital Transformation"},
		},
		Budgets: []models.Option{
			{Value: "under-50k", Label: "Under $50,000"},
			{Value: "50k-100k", Label: "$50,000 - $100,000"},
			{Value: "100k-250k", Label: "$100,000 - $250,000"},
			{Value: "250k-500k", Label: "$250,000 - $500,000"},
			{Value: "over-500k", Label: "Over $500,000"},
		},
		Info: []models.ContactInfo{
			{Icon: "phone", Label: "Phone", Value: "+91 7017287746", Color: "primary-blue"},
			{Icon: "mail", Label: "Email", Value: "contact@aicloudmania.com", Color: "accent-teal"},
			{Icon: "map-pin", Label: "Location", Value: "India", Color: "success-green"},
			{Icon: "clock", Label: "Business Hours", Value: "Mon - Fri: 9AM - 6PM IST", Color: "warning-amber"},
		},
		Certifications: []models.Certification{
			{Icon: "shield", Name: "SOC 2", Status: "Certified", Color: "primary-blue"},
			{Icon: "lock", Name: "GDPR", Status: "Compliant", Color: "success-green"},
			{Icon: "tag", Name: "ISO 27001", Status: "In Progress", Color: "accent-teal"},
			{Icon: "heart", Name: "HIPAA", Status: "Ready", Color: "warning-amber"},
		},
	}
}

func defaultFooter() models.Footer {
	return models.Footer{
		Blurb: "Leading provider of DevOps, Cloud, and AI solutions, empowering businesses to scale " +
			"efficiently and innovate rapidly with cutting-edge technology.",
		ServiceLinks: []string{
			"Cloud Architecture",
			"AI & ML Solutions",
			"DevOps & SRE",
			"Application Development",
			"Cybersecurity",
		},
		CompanyLinks: []models.Link{
			{Name: "About Us", Href: "#about"},
			{Name: "Portfolio", Href: "#portfolio"},
			{Name: "Contact", Href: "#contact"},
			{Name: "Privacy Policy", Href: "#"},
			{Name: "Terms of Service", Href: "#"},
		},
		Social: []models.SocialLink{
			{Icon: "linkedin", Href: "#"},
			{Icon: "twitter", Href: "#"},
			{Icon: "github", Href: "#"},
		},
		Copyright: "© 2024 AiCloud Mania. All rights reserved. | Designed with ❤️ in India",
	}
}
