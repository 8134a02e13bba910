// Package catalog builds the course catalog and the per-unit, per-modality
// offering tree from the raw offerings feed. Raw course names arrive in
// several spellings; the canonicalizer folds them onto one display name
// and one stable id before anything else touches them.
package catalog

import (
	"strings"

	"github.com/fametro/portal-ingresso/internal/textutil"
)

// TecnologoPrefix marks technologist-track degrees in canonical names.
const TecnologoPrefix = "Tecnologia em "

// DegreeTecnologo and DegreeUndefined classify a course by its canonical
// name prefix. The feed carries no richer degree data yet.
const (
	DegreeTecnologo = "tecnologo"
	DegreeUndefined = "nao_definido"
)

// canonicalNames maps normalized raw spellings to the canonical display
// name. Technologist courses referred to by bare subject ("Logística")
// map onto their "Tecnologia em ..." form.
var canonicalNames = func() map[string]string {
	m := make(map[string]string, 64)

	set := func(raw, canonical string) { m[textutil.Normalize(raw)] = canonical }

	// tecnólogo tracks: bare subject and full form share one entry
	tec := func(subject string) {
		full := TecnologoPrefix + subject
		set(subject, full)
		set(full, full)
	}
	tec("Análise e Desenvolvimento de Sistemas")
	tec("Logística")
	tec("Marketing")
	tec("Gestão da Qualidade")
	tec("Gestão de Recursos Humanos")
	tec("Radiologia")
	tec("Segurança no Trabalho")
	tec("Design Gráfico")
	tec("Estética e Cosmética")
	tec("Gastronomia")
	tec("Big Data e Inteligência Analítica")
	tec("Inteligência Artificial")
	tec("Internet das Coisas (IoT)")
	tec("Jogos Digitais")
	tec("Gestão da Segurança e Defesa Cibernética")
	tec("Gestão de Serviços Jurídicos e Notariais")

	// alternate spellings observed in the feed
	set("Recursos Humanos", TecnologoPrefix+"Gestão de Recursos Humanos")
	set("Fullstack", TecnologoPrefix+"Desenvolvimento Full Stack")
	set(TecnologoPrefix+"Desenvolvimento Full Stack", TecnologoPrefix+"Desenvolvimento Full Stack")
	set("Ciências de Dados", TecnologoPrefix+"Ciência de Dados")
	set(TecnologoPrefix+"Ciência de Dados", TecnologoPrefix+"Ciência de Dados")

	set("Redes de Computadores", "Redes de Computadores")
	set("Rede de Computadores", "Redes de Computadores")
	set("Engenharia Ambiental", "Engenharia Ambiental e Energias Renováveis")
	set("Engenharia Ambiental e Energias Renováveis", "Engenharia Ambiental e Energias Renováveis")

	return m
}()

// CanonicalName maps a raw course name onto its canonical display name.
// Unmapped names are returned trimmed, unchanged.
func CanonicalName(rawName string) string {
	key := textutil.Normalize(rawName)
	if key == "" {
		return ""
	}
	if canonical, ok := canonicalNames[key]; ok {
		return canonical
	}
	return strings.TrimSpace(rawName)
}

// DeriveID derives the stable course id from a canonical name. Two raw
// variants that canonicalize to the same name always share one id.
func DeriveID(canonicalName string) string {
	return textutil.Slugify(canonicalName)
}

// DegreeOf classifies a canonical name by its tecnólogo prefix.
func DegreeOf(canonicalName string) string {
	if strings.HasPrefix(textutil.Normalize(canonicalName), "tecnologia em ") {
		return DegreeTecnologo
	}
	return DegreeUndefined
}
