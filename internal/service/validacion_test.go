package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarURLImagen(t *testing.T) {
	casos := []struct {
		nombre string
		url    string
		valida bool
	}{
		{"dominio confiable sin extensión", "https://res.cloudinary.com/demo/image/upload/v123/camiseta", true},
		{"subdominio de confiable", "https://eu.res.cloudinary.com/demo/upload/camiseta", true},
		{"imgur", "https://i.imgur.com/abc123.png", true},
		{"extensión png en host cualquiera", "https://cdn.example.com/fotos/camiseta.png", true},
		{"extensión jpeg con mayúsculas", "https://cdn.example.com/fotos/CAMISETA.JPEG", true},
		{"http plano permitido", "http://images.unsplash.com/photo-123", true},
		{"data URI", "data:image/png;base64,iVBORw0KGgo=", false},
		{"base64 escondido en la ruta", "https://evil.example.com/x;base64,AAAA", false},
		{"esquema ftp", "ftp://cdn.example.com/camiseta.png", false},
		{"sin esquema", "cdn.example.com/camiseta.png", false},
		{"host desconocido sin extensión", "https://evil.example.com/camiseta", false},
		{"texto cualquiera", "no soy una url", false},
		{"vacía", "", false},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			err := validarURLImagen(c.url)
			if c.valida {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidarNombreInsumo(t *testing.T) {
	assert.NoError(t, validarNombreInsumo("Tinta negra 500ml"))
	assert.NoError(t, validarNombreInsumo("Ñandú"))
	assert.Error(t, validarNombreInsumo("500-200"))
	assert.Error(t, validarNombreInsumo("12345"))
	assert.Error(t, validarNombreInsumo("--- ---"))
}
