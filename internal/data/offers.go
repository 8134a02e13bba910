// Package data holds the embedded raw data tables: the per-unit course
// offerings and the per-unit admission-link blocks. These tables are
// maintained manually and updated each admission term; the builders in
// catalog and links own all normalization, so edits here stay plain.
package data

import (
	"github.com/fametro/portal-ingresso/internal/catalog"
	"github.com/fametro/portal-ingresso/internal/taxonomy"
)

// matNot expands each name into Matutino and Noturno source items, the
// most common presencial/híbrido pattern.
func matNot(names ...string) []catalog.Source {
	out := make([]catalog.Source, 0, len(names)*2)
	for _, n := range names {
		out = append(out,
			catalog.Source{Name: n, Shift: taxonomy.ShiftMatutino},
			catalog.Source{Name: n, Shift: taxonomy.ShiftNoturno},
		)
	}
	return out
}

// only expands each name into a single source item with the given shift.
func only(shift taxonomy.Shift, names ...string) []catalog.Source {
	out := make([]catalog.Source, 0, len(names))
	for _, n := range names {
		out = append(out, catalog.Source{Name: n, Shift: shift})
	}
	return out
}

// bare expands names into shiftless items. Used for semipresencial and
// EAD buckets, whose shift sets are forced by the builder.
func bare(names ...string) []catalog.Source {
	out := make([]catalog.Source, 0, len(names))
	for _, n := range names {
		out = append(out, catalog.Source{Name: n})
	}
	return out
}

func join(lists ...[]catalog.Source) []catalog.Source {
	var out []catalog.Source
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Offers is the raw offerings feed for all campuses, 2026/1 term.
var Offers = catalog.RawOffers{
	taxonomy.UnitSede: {
		taxonomy.ModalityPresencial: join(
			matNot(
				"Administração",
				"Arquitetura e Urbanismo",
				"Big Data e Inteligência Analítica",
				"Biomedicina",
				"Ciência da Computação",
				"Ciências Contábeis",
				"Ciências de Dados",
				"Ciências Econômicas",
				"Direito",
				"Educação Física Bacharelado",
				"Educação Física Licenciatura",
				"Enfermagem",
				"Engenharia Ambiental",
				"Engenharia Civil",
				"Engenharia da Computação",
				"Engenharia de Produção",
				"Engenharia de Software",
				"Engenharia Elétrica",
				"Engenharia Mecânica",
				"Farmácia",
				"Fisioterapia",
				"Fonoaudiologia",
				"Fullstack",
				"Gestão da Segurança e Defesa Cibernética",
				"Gestão de Serviços Jurídicos e Notariais",
				"Inteligência Artificial",
				"Internet das Coisas (IoT)",
				"Jogos Digitais",
				"Jornalismo",
				"Medicina Veterinária",
				"Nutrição",
				"Odontologia",
				"Pedagogia",
				"Psicologia",
				"Publicidade e Propaganda",
				"Quiropraxia",
				"Redes de Computadores",
				"Sistemas de Informação",
				"Tecnologia em Análise e Desenvolvimento de Sistemas",
				"Tecnologia em Design Gráfico",
				"Tecnologia em Estética e Cosmética",
				"Tecnologia em Gastronomia",
				"Tecnologia em Gestão da Qualidade",
				"Tecnologia em Gestão de Recursos Humanos",
				"Tecnologia em Logística",
				"Tecnologia em Marketing",
				"Tecnologia em Radiologia",
			),
			only(taxonomy.ShiftVespertino, "Direito", "Enfermagem", "Fisioterapia"),
			only(taxonomy.ShiftNoturno,
				"Serviço Social",
				"Tecnologia em Segurança no Trabalho",
				"Turismo",
			),
		),

		taxonomy.ModalityHibrido: matNot(
			"Administração",
			"Biomedicina",
			"Engenharia Ambiental",
			"Engenharia Civil",
			"Engenharia de Produção",
			"Engenharia Elétrica",
			"Engenharia Mecânica",
			"Farmácia",
			"Fisioterapia",
			"Fonoaudiologia",
			"Nutrição",
		),

		taxonomy.ModalitySemipresencial: bare(
			"Nutrição",
			"Farmácia",
			"Análise e Desenvolvimento de Sistemas",
			"Ciências Contábeis",
			"Biomedicina",
			"Fisioterapia",
			"Pedagogia",
			"Educação Física Bacharelado",
			"Administração",
			"Educação Física Licenciatura",
			"Engenharia Civil",
			"Engenharia Elétrica",
			"Letras",
			"Psicopedagogia",
			"Serviço Social",
			"Logística",
			"Engenharia de Software",
			"Estética e Cosmética",
		),

		taxonomy.ModalityEAD: bare(
			"Administração",
			"Ciências Contábeis",
			"Engenharia de Software",
			"Tecnologia em Análise e Desenvolvimento de Sistemas",
			"Tecnologia em Gestão Comercial",
			"Tecnologia em Gestão da Tecnologia da Informação",
			"Tecnologia em Gestão de Recursos Humanos",
			"Tecnologia em Gestão de Segurança Privada",
			"Tecnologia em Gestão Financeira",
			"Tecnologia em Gestão Pública",
			"Tecnologia em Logística",
			"Tecnologia em Marketing",
			"Tecnologia em Segurança Pública",
			"Tecnologia em Gestão Portuária",
			"Tecnologia em Gestão da Qualidade",
		),
	},

	taxonomy.UnitLeste: {
		taxonomy.ModalityPresencial: matNot(
			"Administração",
			"Análise e Desenvolvimento de Sistemas",
			"Biomedicina",
			"Ciências Contábeis",
			"Direito",
			"Educação Física Bacharelado",
			"Educação Física Licenciatura",
			"Enfermagem",
			"Engenharia Ambiental e Energias Renováveis",
			"Engenharia Civil",
			"Engenharia de Produção",
			"Engenharia Elétrica",
			"Farmácia",
			"Fisioterapia",
			"Jornalismo",
			"Nutrição",
			"Pedagogia",
			"Psicologia",
			"Serviço Social",
			"Sistemas de Informação",
			"Tecnologia em Design Gráfico",
			"Tecnologia em Estética e Cosmética",
			"Tecnologia em Gastronomia",
			"Tecnologia em Gestão da Qualidade",
			"Tecnologia em Gestão de Recursos Humanos",
			"Tecnologia em Logística",
			"Tecnologia em Marketing",
			"Tecnologia em Radiologia",
			"Tecnologia em Segurança no Trabalho",
		),

		taxonomy.ModalityHibrido: matNot(
			"Administração",
			"Biomedicina",
			"Engenharia Ambiental",
			"Engenharia Civil",
			"Engenharia de Produção",
			"Engenharia Elétrica",
			"Engenharia Mecânica",
			"Farmácia",
			"Fisioterapia",
			"Nutrição",
		),

		taxonomy.ModalitySemipresencial: bare(
			"Administração",
			"Análise e Desenvolvimento de Sistemas",
			"Biomedicina",
			"Ciências Contábeis",
			"Educação Física Bacharelado",
			"Educação Física Licenciatura",
			"Engenharia de Software",
			"Estética e Cosmética",
			"Fisioterapia",
			"Letras",
			"Logística",
			"Nutrição",
			"Pedagogia",
			"Psicopedagogia",
			"Serviço Social",
		),

		taxonomy.ModalityEAD: bare(
			"Administração",
			"Ciências Contábeis",
			"Engenharia de Software",
			"Tecnologia em Análise e Desenvolvimento de Sistemas",
			"Tecnologia em Gestão Comercial",
			"Tecnologia em Gestão da Qualidade",
			"Tecnologia em Gestão da Tecnologia da Informação",
			"Tecnologia em Gestão de Recursos Humanos",
			"Tecnologia em Gestão de Segurança Privada",
			"Tecnologia em Gestão Financeira",
			"Tecnologia em Gestão Portuária",
			"Tecnologia em Gestão Pública",
			"Tecnologia em Logística",
			"Tecnologia em Marketing",
			"Tecnologia em Segurança Pública",
		),
	},

	taxonomy.UnitSul: {
		taxonomy.ModalityPresencial: join(
			matNot(
				"Administração",
				"Análise e Desenvolvimento de Sistemas",
				"Biomedicina",
				"Ciências Contábeis",
				"Direito",
				"Educação Física Bacharelado",
				"Educação Física Licenciatura",
				"Enfermagem",
				"Engenharia Civil",
				"Engenharia de Produção",
				"Engenharia Elétrica",
				"Engenharia Mecânica",
				"Farmácia",
				"Fisioterapia",
				"Nutrição",
				"Pedagogia",
				"Psicologia",
				"Sistemas de Informação",
				"Tecnologia em Estética e Cosmética",
				"Tecnologia em Gestão da Qualidade",
				"Tecnologia em Gestão de Recursos Humanos",
				"Tecnologia em Logística",
				"Tecnologia em Marketing",
			),
			only(taxonomy.ShiftNoturno,
				"Engenharia de Software",
				"Serviço Social",
				"Tecnologia em Design Gráfico",
				"Tecnologia em Radiologia",
				"Tecnologia em Segurança no Trabalho",
				"Terapia Ocupacional",
			),
		),

		taxonomy.ModalityHibrido: matNot(
			"Administração",
			"Biomedicina",
			"Engenharia Ambiental",
			"Engenharia Civil",
			"Engenharia de Produção",
			"Engenharia Elétrica",
			"Engenharia Mecânica",
			"Farmácia",
			"Fisioterapia",
			"Fonoaudiologia",
			"Logística",
			"Nutrição",
		),

		taxonomy.ModalitySemipresencial: bare(
			"Administração",
			"Análise e Desenvolvimento de Sistemas",
			"Biomedicina",
			"Ciências Contábeis",
			"Educação Física Bacharelado",
			"Educação Física Licenciatura",
			"Engenharia de Software",
			"Estética e Cosmética",
			"Fisioterapia",
			"Letras",
			"Nutrição",
			"Pedagogia",
			"Psicopedagogia",
			"Serviço Social",
			"Tecnologia em Logística",
		),

		taxonomy.ModalityEAD: bare(
			"Administração",
			"Ciências Contábeis",
			"Engenharia de Software",
			"Tecnologia em Análise e Desenvolvimento de Sistemas",
			"Tecnologia em Gestão Comercial",
			"Tecnologia em Gestão da Qualidade",
			"Tecnologia em Gestão da Tecnologia da Informação",
			"Tecnologia em Gestão de Recursos Humanos",
			"Tecnologia em Gestão de Segurança Privada",
			"Tecnologia em Gestão Financeira",
			"Tecnologia em Gestão Portuária",
			"Tecnologia em Gestão Pública",
			"Tecnologia em Logística",
			"Tecnologia em Marketing",
			"Tecnologia em Segurança Pública",
		),
	},

	taxonomy.UnitNorte: {
		taxonomy.ModalityPresencial: matNot(
			"Administração",
			"Biomedicina",
			"Ciências Contábeis",
			"Direito",
			"Educação Física Bacharelado",
			"Enfermagem",
			"Engenharia da Computação",
			"Farmácia",
			"Fisioterapia",
			"Nutrição",
			"Pedagogia",
			"Psicologia",
			"Tecnologia em Análise e Desenvolvimento de Sistemas",
			"Tecnologia em Estética e Cosmética",
			"Tecnologia em Gestão da Qualidade",
			"Tecnologia em Gestão de Recursos Humanos",
			"Tecnologia em Logística",
			"Tecnologia em Marketing",
		),

		taxonomy.ModalityHibrido: matNot(
			"Administração",
			"Biomedicina",
			"Engenharia Ambiental",
			"Engenharia Civil",
			"Engenharia de Produção",
			"Engenharia Elétrica",
			"Engenharia Mecânica",
			"Farmácia",
			"Fisioterapia",
			"Fonoaudiologia",
			"Nutrição",
		),

		taxonomy.ModalitySemipresencial: bare(
			"Administração",
			"Biomedicina",
			"Ciências Contábeis",
			"Educação Física Bacharelado",
			"Educação Física Licenciatura",
			"Engenharia de Software",
			"Fisioterapia",
			"Letras",
			"Nutrição",
			"Pedagogia",
			"Psicopedagogia",
			"Serviço Social",
			"Tecnologia em Análise e Desenvolvimento de Sistemas",
			"Tecnologia em Estética e Cosmética",
			"Tecnologia em Logística",
		),

		taxonomy.ModalityEAD: bare(
			"Administração",
			"Ciências Contábeis",
			"Engenharia de Software",
			"Tecnologia em Análise e Desenvolvimento de Sistemas",
			"Tecnologia em Gestão Comercial",
			"Tecnologia em Gestão da Qualidade",
			"Tecnologia em Gestão da Tecnologia da Informação",
			"Tecnologia em Gestão de Recursos Humanos",
			"Tecnologia em Gestão de Segurança Privada",
			"Tecnologia em Gestão Financeira",
			"Tecnologia em Gestão Portuária",
			"Tecnologia em Gestão Pública",
			"Tecnologia em Logística",
			"Tecnologia em Marketing",
			"Tecnologia em Segurança Pública",
		),
	},

	// Oeste on the portal maps onto this campus.
	taxonomy.UnitCompensa: {
		taxonomy.ModalityPresencial: matNot(
			"Administração",
			"Biomedicina",
			"Ciências Contábeis",
			"Direito",
			"Enfermagem",
			"Estética e Cosmética",
			"Farmácia",
			"Logística",
			"Marketing",
			"Nutrição",
			"Pedagogia",
			"Psicologia",
			"Recursos Humanos",
		),

		// não oferece
		taxonomy.ModalityHibrido: nil,

		taxonomy.ModalitySemipresencial: bare(
			"Administração",
			"Ciências Contábeis",
			"Pedagogia",
			"Educação Física Bacharelado",
			"Educação Física Licenciatura",
			"Letras",
			"Psicopedagogia",
			"Serviço Social",
			"Logística",
			"Engenharia de Software",
		),

		taxonomy.ModalityEAD: bare(
			"Administração",
			"Ciências Contábeis",
			"Engenharia de Software",
			"Tecnologia em Análise e Desenvolvimento de Sistemas",
			"Tecnologia em Gestão Comercial",
			"Tecnologia em Gestão da Qualidade",
			"Tecnologia em Gestão da Tecnologia da Informação",
			"Tecnologia em Gestão de Recursos Humanos",
			"Tecnologia em Gestão de Segurança Privada",
			"Tecnologia em Gestão Financeira",
			"Tecnologia em Gestão Portuária",
			"Tecnologia em Gestão Pública",
			"Tecnologia em Logística",
			"Tecnologia em Marketing",
			"Tecnologia em Segurança Pública",
		),
	},
}
