package data

import "github.com/fametro/portal-ingresso/internal/links"

const enrollBase = "https://inscricao.fametro.edu.br/FrameHTML/web/app/Edu/PortalProcessoSeletivo/"

func link(code, typ, modality, href string) links.RawLink {
	return links.RawLink{Code: code, Type: typ, Modality: modality, Href: href}
}

// PortalLinks is the embedded admission-link source, one entry per portal
// campus card. Process codes and hrefs come from the enrollment system and
// are updated each term. The href fragments vary across entries; the link
// normalizer forces the canonical wizard fragment on all of them.
var PortalLinks = []links.StructuredUnit{
	{
		Key:        "sede",
		Title:      "SEDE",
		Theme:      "sede",
		CoursesKey: "sede",
		Blocks: map[string]links.Block{
			"presencial": {
				Title: "Presencial",
				Links: []links.RawLink{
					link("3115", "Vestibular Online", "Presencial", enrollBase+"?c=1&f=1&ps=3115#/es/inscricoeswizard"),
					link("3120", "Matrícula Online", "Presencial", enrollBase+"?c=1&f=1&ps=3120#/es/inscricoeswizard"),
				},
			},
			"hibrido": {
				Title: "Híbrido",
				Links: []links.RawLink{
					link("3118", "Vestibular Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3118#/es/inscricoeswizard"),
					link("3123", "Matrícula Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3123#/es/inscricoeswizard"),
				},
			},
			"semipresencial": {
				Title: "Semipresencial",
				Links: []links.RawLink{
					link("3117", "Vestibular Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3117#/es/inscricoeswizard"),
					link("3122", "Matrícula Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3122#/es/inscricoeswizard"),
				},
			},
			"flex": {
				Title: "Semipresencial Flex",
				Links: []links.RawLink{
					link("3119", "Vestibular Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3119#/es/inscricoeswizard"),
					link("3124", "Matrícula Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3124#/es/inscricoeswizard"),
				},
			},
			"ead": {
				Title: "EAD (100% Online)",
				Links: []links.RawLink{
					link("3116", "Vestibular Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3116#/es/inscricoeswizard"),
					link("3121", "Matrícula Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3121#/es/inscricoeswizard"),
				},
			},
		},
	},

	{
		Key:        "leste",
		Title:      "LESTE",
		Theme:      "leste",
		CoursesKey: "leste",
		Blocks: map[string]links.Block{
			"presencial": {
				Title: "Presencial",
				Links: []links.RawLink{
					link("3125", "Vestibular Online", "Presencial", enrollBase+"?c=1&f=1&ps=3125#/es/inscricoeswizard"),
					link("3131", "Matrícula Online", "Presencial", enrollBase+"?c=1&f=1&ps=3131#/es/inscricoeswizard"),
				},
			},
			"hibrido": {
				Title: "Híbrido",
				Links: []links.RawLink{
					link("3128", "Vestibular Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3128#/es/inscricoeswizard"),
					link("3134", "Matrícula Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3134#/es/inscricoeswizard"),
				},
			},
			"semipresencial": {
				Title: "Semipresencial",
				Links: []links.RawLink{
					link("3127", "Vestibular Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3127#/es/inscricoeswizard"),
					link("3133", "Matrícula Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3133#/es/inscricoeswizard"),
				},
			},
			"flex": {
				Title: "Semipresencial Flex",
				Links: []links.RawLink{
					link("3130", "Vestibular Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3130#/es/inscricoeswizard"),
					link("3135", "Matrícula Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3135#/es/inscricoeswizard"),
				},
			},
			"ead": {
				Title: "EAD (100% Online)",
				Links: []links.RawLink{
					link("3126", "Vestibular Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3126#/es/inscricoeswizard"),
					link("3132", "Matrícula Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3132#/es/inscricoeswizard"),
				},
			},
		},
	},

	{
		Key:        "sul",
		Title:      "SUL",
		Theme:      "sul",
		CoursesKey: "sul",
		Blocks: map[string]links.Block{
			"presencial": {
				Title: "Presencial",
				Links: []links.RawLink{
					link("3136", "Vestibular Online", "Presencial", enrollBase+"?c=1&f=1&ps=3136#/es/inscricoeswizard"),
					link("3141", "Matrícula Online", "Presencial", enrollBase+"?c=1&f=1&ps=3141#/es/inscricoeswizard"),
				},
			},
			"hibrido": {
				Title: "Híbrido",
				Links: []links.RawLink{
					link("3139", "Vestibular Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3139#/es/inscricoeswizard"),
					link("3144", "Matrícula Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3144#/es/inscricoeswizard"),
				},
			},
			"semipresencial": {
				Title: "Semipresencial",
				Links: []links.RawLink{
					link("3138", "Vestibular Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3138#/es/inscricoeswizard"),
					link("3143", "Matrícula Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3143#/es/inscricoeswizard"),
				},
			},
			"flex": {
				Title: "Semipresencial Flex",
				Links: []links.RawLink{
					link("3140", "Vestibular Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3140#/es/inscricoeswizard"),
					link("3145", "Matrícula Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3145#/es/inscricoeswizard"),
				},
			},
			"ead": {
				Title: "EAD (100% Online)",
				Links: []links.RawLink{
					link("3137", "Vestibular Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3137#/es/inscricoeswizard"),
					link("3142", "Matrícula Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3142#/es/inscricoeswizard"),
				},
			},
		},
	},

	{
		Key:        "norte",
		Title:      "NORTE",
		Theme:      "norte",
		CoursesKey: "norte",
		Blocks: map[string]links.Block{
			"presencial": {
				Title: "Presencial",
				Links: []links.RawLink{
					link("326", "Vestibular Online", "Presencial", enrollBase+"?c=3&f=1&ps=326#/es/inscricoeswizard/dados-basicos"),
					link("325", "Matrícula Online", "Presencial", enrollBase+"?c=3&f=1&ps=325#/es/inscricoeswizard/dados-basicos"),
				},
			},
			"hibrido": {
				Title: "Híbrido",
				Links: []links.RawLink{
					link("3148", "Vestibular Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3148#/es/inscricoeswizard"),
					link("3152", "Matrícula Online", "Híbrido", enrollBase+"?c=1&f=1&ps=3152#/es/inscricoeswizard"),
				},
			},
			"semipresencial": {
				Title: "Semipresencial",
				Links: []links.RawLink{
					link("3147", "Vestibular Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3147#/es/inscricoeswizard"),
					link("3151", "Matrícula Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3151#/es/inscricoeswizard"),
				},
			},
			"flex": {
				Title: "Semipresencial Flex",
				Links: []links.RawLink{
					link("3149", "Vestibular Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3149#/es/inscricoeswizard"),
					link("3153", "Matrícula Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3153#/es/inscricoeswizard"),
				},
			},
			"ead": {
				Title: "EAD (100% Online)",
				Links: []links.RawLink{
					link("3146", "Vestibular Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3146#/es/inscricoeswizard"),
					link("3150", "Matrícula Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3150#/es/inscricoeswizard"),
				},
			},
		},
	},

	// The portal advertises this campus as Oeste; offerings live under the
	// compensa key.
	{
		Key:        "oeste",
		Title:      "OESTE — COMPENSA",
		Theme:      "oeste",
		CoursesKey: "compensa",
		Blocks: map[string]links.Block{
			"presencial": {
				Title: "Presencial",
				Links: []links.RawLink{
					link("331", "Vestibular Online", "Presencial", enrollBase+"?c=3&f=6&ps=331#/es/inscricoeswizard/dados-basicos"),
					link("332", "Matrícula Online", "Presencial", enrollBase+"?c=3&f=6&ps=332#/es/inscricoeswizard/dados-basicos"),
				},
			},
			// não oferece híbrido
			"hibrido": {Title: "Híbrido"},
			"semipresencial": {
				Title: "Semipresencial",
				Links: []links.RawLink{
					link("3117", "Vestibular Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3117#/es/inscricoeswizard"),
					link("3122", "Matrícula Online", "Semipresencial", enrollBase+"?c=1&f=1&ps=3122#/es/inscricoeswizard"),
				},
			},
			"flex": {
				Title: "Semipresencial Flex",
				Links: []links.RawLink{
					link("3119", "Vestibular Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3119#/es/inscricoeswizard"),
					link("3124", "Matrícula Online", "Semi Flex", enrollBase+"?c=1&f=1&ps=3124#/es/inscricoeswizard"),
				},
			},
			"ead": {
				Title: "EAD (100% Online)",
				Links: []links.RawLink{
					link("3116", "Vestibular Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3116#/es/inscricoeswizard"),
					link("3121", "Matrícula Online", "100% EAD", enrollBase+"?c=1&f=1&ps=3121#/es/inscricoeswizard"),
				},
			},
		},
	},
}
