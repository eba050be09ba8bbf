package locale

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"log"
	"strings"

	"localestatus/internal/domain"
	"localestatus/internal/domain/entities"
)

type xmlLocale struct {
	XMLName xml.Name
	Lang    string    `xml:"lang,attr"`
	Terms   *xmlTerms `xml:"terms"`
}

type xmlTerms struct {
	Terms []xmlTerm `xml:"term"`
}

type xmlTerm struct {
	Name       string   `xml:"name,attr"`
	Form       string   `xml:"form,attr"`
	GenderForm string   `xml:"gender-form,attr"`
	Single     *xmlText `xml:"single"`
	Multiple   *xmlText `xml:"multiple"`
	Text       string   `xml:",chardata"`
}

type xmlText struct {
	Text string `xml:",chardata"`
}

// TermKey builds the canonical key of a CSL term. The long form is the
// default and is left out of the key.
func TermKey(name, form, genderForm string) string {
	key := name
	if form != "" && form != "long" {
		key += "/" + form
	}
	if genderForm != "" {
		key += "/" + genderForm
	}
	return key
}

// Parse decodes a CSL locale document into a Locale. Plural terms yield two
// keys suffixed with #single and #multiple. The locale's Name is left empty.
func Parse(code string, data []byte) (*entities.Locale, error) {
	var doc xmlLocale
	dec := xml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&doc); err != nil {
		return nil, &domain.ParseError{Locale: code, Reason: "XML invalide", Err: err}
	}
	if doc.XMLName.Local != "locale" {
		return nil, &domain.ParseError{
			Locale: code,
			Reason: fmt.Sprintf("élément racine %q inattendu", doc.XMLName.Local),
		}
	}
	if doc.Terms == nil {
		return nil, &domain.ParseError{Locale: code, Reason: "bloc <terms> manquant"}
	}
	if doc.Lang != "" && !strings.EqualFold(doc.Lang, code) {
		log.Printf("⚠️ Locale %s: xml:lang=%q ne correspond pas", code, doc.Lang)
	}

	loc := entities.NewLocale(code, "")
	for i, t := range doc.Terms.Terms {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			return nil, &domain.ParseError{Locale: code, Reason: fmt.Sprintf("terme #%d sans attribut name", i+1)}
		}
		key := TermKey(name, t.Form, t.GenderForm)

		if t.Single == nil && t.Multiple == nil {
			if !loc.Add(key, t.Text) {
				return nil, duplicateKey(code, key)
			}
			continue
		}
		if t.Single == nil || t.Multiple == nil {
			return nil, &domain.ParseError{
				Locale: code,
				Reason: fmt.Sprintf("terme %q: <single> et <multiple> doivent être fournis ensemble", key),
			}
		}
		if !loc.Add(key+"#single", t.Single.Text) {
			return nil, duplicateKey(code, key+"#single")
		}
		if !loc.Add(key+"#multiple", t.Multiple.Text) {
			return nil, duplicateKey(code, key+"#multiple")
		}
	}
	return loc, nil
}

func duplicateKey(code, key string) error {
	return &domain.ParseError{Locale: code, Reason: fmt.Sprintf("clé %q en double", key)}
}
