package service

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
)

// Reglas de validación que no caben en un tag del validador porque dependen
// de parsear la URL o de mirar más de un aspecto del valor.

// dominiosImagenConfiables son los hosts desde los que aceptamos imágenes
// sin exigir extensión (los CDN suelen servir sin sufijo en la ruta).
var dominiosImagenConfiables = []string{
	"res.cloudinary.com",
	"i.imgur.com",
	"images.unsplash.com",
	"lh3.googleusercontent.com",
	"drive.google.com",
	"firebasestorage.googleapis.com",
}

var extensionesImagen = []string{".png", ".jpg", ".jpeg", ".webp", ".gif", ".svg"}

// validarURLImagen acepta solo URLs http(s) que apunten a un dominio
// confiable o terminen en una extensión de imagen conocida. Los payloads
// inline (data:, base64) se rechazan: revientan el límite de 255 caracteres
// de la columna y no son una referencia, son el archivo entero.
func validarURLImagen(valor string) error {
	v := strings.TrimSpace(valor)
	lower := strings.ToLower(v)

	if strings.HasPrefix(lower, "data:") || strings.Contains(lower, ";base64,") {
		return apierror.Validacion("La imagen debe ser una URL, no contenido embebido en base64")
	}

	u, err := url.Parse(v)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return apierror.Validacion("La imagen debe ser una URL http o https válida")
	}

	host := strings.ToLower(u.Hostname())
	for _, d := range dominiosImagenConfiables {
		if host == d || strings.HasSuffix(host, "."+d) {
			return nil
		}
	}

	ruta := strings.ToLower(u.Path)
	for _, ext := range extensionesImagen {
		if strings.HasSuffix(ruta, ext) {
			return nil
		}
	}

	return apierror.Validacion("La URL de imagen debe venir de un dominio conocido o terminar en una extensión de imagen")
}

var tieneLetra = regexp.MustCompile(`\p{L}`)

// validarNombreInsumo exige al menos una letra: "500-200" no describe nada.
func validarNombreInsumo(nombre string) error {
	if !tieneLetra.MatchString(nombre) {
		return apierror.Validacion("El nombre del insumo debe contener al menos una letra")
	}
	return nil
}
