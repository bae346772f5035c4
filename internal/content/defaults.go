package content

// portfolio is built once at package load. Default hands out copies.
var portfolio = Portfolio{
	Owner: Owner{
		Name:     "Alexandria Roberts",
		Initials: "AR",
		Headline: []string{"Frontend", "Developer"},
		Specialty: Highlighted{
			Highlight: "Bitcoin",
			Trail:     " & Blockchain Expert",
		},
		Intro: Highlighted{
			Lead:      "Crafting exceptional user experiences for the decentralized web. ",
			Highlight: "4+ years",
			Trail:     " specializing in Bitcoin, DeFi, and blockchain applications.",
		},
		Description: "Portfolio of Alexandria Roberts, Frontend Developer specializing in Bitcoin & Blockchain technologies",
		Location:    "Available for Freelance Work Worldwide",
		Email:       "hello@alexandriaroberts.dev",
		Image:       "/profile.png?height=400&width=400",
		Resume:      "Download Resume",
		Social: []Link{
			{Label: "GitHub", Href: "#"},
			{Label: "LinkedIn", Href: "#"},
			{Label: "Mail", Href: "mailto:hello@alexandriaroberts.dev"},
		},
	},
	About: About{
		Lead: "Passionate frontend developer with deep expertise in blockchain technologies, specializing in " +
			"Bitcoin and DeFi applications that push the boundaries.",
		Tenure: Highlighted{
			Highlight: "4+ Years",
			Trail:     "\nof Blockchain Excellence",
		},
		Paragraphs: []string{
			"I've dedicated my career to mastering the intersection of frontend development and blockchain " +
				"technology. From building secure Bitcoin wallet interfaces to creating sophisticated DeFi trading " +
				"platforms, I bring both technical expertise and user-centric design thinking to every project.",
			"My experience spans the entire blockchain ecosystem - from Bitcoin's Lightning Network to Ethereum's " +
				"smart contracts, always with a focus on creating intuitive, secure, and performant user interfaces.",
		},
	},
	Headings: Headings{
		About:    "About Me",
		Projects: "Featured Projects",
		ProjectsLead: "Showcasing cutting-edge blockchain applications that demonstrate my expertise in frontend " +
			"development and web3 integration.",
		Experience: "Experience",
		ExperienceLead: "A proven track record of delivering high-impact blockchain solutions across various " +
			"industries and company stages.",
		Skills: "Technical Expertise",
	},
	Skills: []string{
		"React",
		"Next.js",
		"TypeScript",
		"JavaScript",
		"Tailwind CSS",
		"Web3.js",
		"Ethers.js",
		"Solidity",
		"Bitcoin APIs",
		"Blockchain Integration",
		"DeFi Protocols",
		"Smart Contracts",
		"Wallet Integration",
		"Node.js",
		"GraphQL",
	},
	Projects: []Project{
		{
			Title: "DeFi Trading Dashboard",
			Description: "Real-time cryptocurrency trading interface with advanced charting and portfolio " +
				"management for Bitcoin and Ethereum.",
			Tech:   []string{"React", "TypeScript", "Web3.js", "TradingView"},
			GitHub: "#",
			Live:   "#",
			Image:  "/placeholder.svg?height=200&width=300",
			Accent: "from-orange-500 to-red-500",
		},
		{
			Title:       "Bitcoin Wallet Interface",
			Description: "Secure Bitcoin wallet application with multi-signature support and hardware wallet integration.",
			Tech:        []string{"Next.js", "Bitcoin Core", "Lightning Network", "Tailwind"},
			GitHub:      "#",
			Live:        "#",
			Image:       "/placeholder.svg?height=200&width=300",
			Accent:      "from-yellow-500 to-orange-500",
		},
		{
			Title: "NFT Marketplace",
			Description: "Full-featured NFT marketplace with minting, trading, and auction capabilities on " +
				"Ethereum blockchain.",
			Tech:   []string{"React", "Solidity", "IPFS", "Ethers.js"},
			GitHub: "#",
			Live:   "#",
			Image:  "/placeholder.svg?height=200&width=300",
			Accent: "from-purple-500 to-pink-500",
		},
	},
	Experience: []Experience{
		{
			Title:   "Senior Frontend Developer",
			Company: "Blockchain Startup",
			Period:  "2022 - Present",
			Description: "Lead frontend development for DeFi applications, implementing complex trading " +
				"interfaces and wallet integrations.",
			Icon: IconCode,
		},
		{
			Title:       "Frontend Developer",
			Company:     "Crypto Exchange",
			Period:      "2021 - 2022",
			Description: "Developed user interfaces for cryptocurrency trading platform serving 100k+ active users.",
			Icon:        IconZap,
		},
		{
			Title:       "Freelance Developer",
			Company:     "Various Clients",
			Period:      "2020 - 2021",
			Description: "Built custom blockchain applications and smart contract interfaces for multiple clients.",
			Icon:        IconGlobe,
		},
	},
	Contact: Contact{
		Title: "Let's Build the Future",
		Lead: "Ready to create exceptional blockchain experiences? Let's discuss how my expertise can drive " +
			"your project forward.",
		Primary:   "Get In Touch",
		Secondary: "Schedule a Call",
	},
	Footer: "Crafted with passion for blockchain innovation.",
}

// Default returns a fresh copy of the built-in portfolio.
func Default() Portfolio {
	return portfolio.Clone()
}
