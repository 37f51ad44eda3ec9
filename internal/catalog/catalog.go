// Package catalog exposes the static policy reference data. The catalog is
// loaded once and never mutated at runtime.
package catalog

import (
	"fmt"

	"github.com/afuentes/centinela/pkg/types"
)

var policies = []types.Policy{
	{
		Name:        "Malware, phishing o suplantación de identidad",
		Description: "Contenido que intenta engañar a los usuarios para que compartan información confidencial o descarguen software malicioso.",
	},
	{
		Name:        "Suplantación de identidad",
		Description: "Contenido que se hace pasar por otra persona o entidad para engañar a los usuarios o causar daño.",
	},
	{
		Name:        "Imágenes de abuso sexual infantil (CSAM)",
		Description: "Cualquier contenido que represente o promueva el abuso sexual infantil. Tolerancia cero.",
	},
	{
		Name:        "Acoso",
		Description: "Contenido que promueve el acoso, la intimidación o el abuso de individuos o grupos.",
	},
	{
		Name:        "Discurso de odio",
		Description: "Contenido que promueve la violencia, incita al odio o discrimina por motivos de raza, religión, género, etc.",
	},
	{
		Name:        "Trata de personas",
		Description: "Contenido que facilita o promueve la explotación humana o el tráfico de personas.",
	},
	{
		Name:        "Contenido sexualmente explícito",
		Description: "Contenido que contiene desnudez o actos sexuales explícitos no educativos ni artísticos.",
	},
	{
		Name:        "Violencia y sangre",
		Description: "Contenido extremadamente violento o gráfico que no tiene un propósito informativo o documental.",
	},
	{
		Name:        "Políticas dañinas o peligrosas",
		Description: "Contenido que promueve actividades ilegales o peligrosas que pueden causar daño físico grave.",
	},
}

// All returns every policy in the catalog. The returned slice is a copy.
func All() []types.Policy {
	out := make([]types.Policy, len(policies))
	copy(out, policies)
	return out
}

// Find returns the policy with the given name.
func Find(name string) (types.Policy, error) {
	for _, p := range policies {
		if p.Name == name {
			return p, nil
		}
	}
	return types.Policy{}, fmt.Errorf("policy %q not found", name)
}
