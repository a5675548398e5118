package validator

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"edutech-usuarios-api/internal/interface/api/rest/dto/auth"
	"edutech-usuarios-api/internal/interface/api/rest/dto/usuario"
)

const (
	minContrasenaLen = 8
	maxContrasenaLen = 72 // bcrypt safe
	maxNombreLen     = 50
	minUsernameLen   = 3
	maxUsernameLen   = 30
)

// rutRe matches the chilean RUT wire format: digits, dash, verifier
// digit or K. The verifier is not arithmetically checked.
var rutRe = regexp.MustCompile(`^[0-9]+-[0-9kK]$`)

func ParseID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	return id, err == nil && id > 0
}

func IsRut(s string) bool {
	return rutRe.MatchString(s)
}

// ValidateUsuario checks the admin create/update payload. Estado and
// role names are resolved later against their registries.
func ValidateUsuario(r usuario.Request) map[string]string {
	errs := make(map[string]string)

	validarIdentidad(errs, r.Rut, r.Username, r.Email)
	validarNombres(errs, r.PrimerNombre, r.SegundoNombre, r.PrimerApellido, r.SegundoApellido)
	if r.FechaNacimiento == "" {
		errs["fechaNacimiento"] = "fechaNacimiento es obligatoria"
	}
	if r.Contrasena != "" {
		validarContrasena(errs, r.Contrasena)
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

// ValidateRegistro checks the self-registration payload. Unlike the
// admin path the password is mandatory.
func ValidateRegistro(r usuario.RegistroRequest) map[string]string {
	errs := make(map[string]string)

	validarIdentidad(errs, r.Rut, r.Username, r.Email)
	validarNombres(errs, r.PrimerNombre, r.SegundoNombre, r.PrimerApellido, r.SegundoApellido)
	if r.FechaNacimiento == "" {
		errs["fechaNacimiento"] = "fechaNacimiento es obligatoria"
	}
	if r.Contrasena == "" {
		errs["contrasena"] = "contrasena es obligatoria"
	} else {
		validarContrasena(errs, r.Contrasena)
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username es obligatorio"
	}
	if strings.TrimSpace(r.Contrasena) == "" {
		errs["contrasena"] = "contrasena es obligatoria"
	} else {
		validarContrasena(errs, r.Contrasena)
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func validarIdentidad(errs map[string]string, rut, username, email string) {
	rut = strings.TrimSpace(rut)
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if rut == "" {
		errs["rut"] = "rut es obligatorio"
	} else if !IsRut(rut) {
		errs["rut"] = "formato de RUT no válido (se espera 12345678-9)"
	}

	if username == "" {
		errs["username"] = "username es obligatorio"
	} else if l := utf8.RuneCountInString(username); l < minUsernameLen || l > maxUsernameLen {
		errs["username"] = "username debe tener entre 3 y 30 caracteres"
	}

	if email == "" {
		errs["email"] = "email es obligatorio"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs["email"] = "formato de email no válido"
	}
}

func validarNombres(errs map[string]string, primerNomb, segundoNomb, primerApell, segundoApell string) {
	if _, msg := validarNombre(primerNomb, true); msg != "" {
		errs["primerNomb"] = msg
	}
	if _, msg := validarNombre(segundoNomb, false); msg != "" {
		errs["segundoNomb"] = msg
	}
	if _, msg := validarNombre(primerApell, true); msg != "" {
		errs["primerApell"] = msg
	}
	if _, msg := validarNombre(segundoApell, false); msg != "" {
		errs["segundoApell"] = msg
	}
}

// validarNombre normalizes to NFC so visually identical names compare
// and measure equally regardless of the client's composition form.
func validarNombre(s string, required bool) (string, string) {
	s = norm.NFC.String(strings.TrimSpace(s))
	if s == "" {
		if required {
			return "", "el nombre es obligatorio"
		}
		return "", ""
	}
	if l := utf8.RuneCountInString(s); l > maxNombreLen {
		return "", "el nombre no puede superar 50 caracteres"
	}
	if !esNombreHumano(s) {
		return "", "caracteres permitidos: letras, espacio, '-', '''"
	}

	return s, ""
}

func esNombreHumano(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' || r == '-' || r == '\'' {
			continue
		}
		return false
	}
	return true
}

func validarContrasena(errs map[string]string, contrasena string) {
	if l := utf8.RuneCountInString(contrasena); l < minContrasenaLen || l > maxContrasenaLen {
		errs["contrasena"] = "contrasena debe tener entre 8 y 72 caracteres"
	}
}
