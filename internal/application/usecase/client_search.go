package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
)

// Search busca por subcadena, sin distinguir mayúsculas ni acentos, sobre
// name, phone, email, address y los campos anidados de cada código
// (code, accountHolderName, service, address, phoneNumber).
//
// Si la consulta trae al menos un dígito se compara además contra los
// teléfonos normalizados (solo dígitos), para que "06 12-34" encuentre
// "0612345678". Consulta en blanco devuelve el listado completo.
// limit > 0 acota el resultado (los llamadores interactivos pasan 10);
// limit <= 0 = sin tope, como usa la operación de búsqueda de la API.
func (uc *ClientUseCase) Search(query string, limit int) ([]*dto.ClientResponse, error) {
	all, err := uc.clients.GetAll()
	if err != nil {
		return nil, err
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return toClientResponses(capClients(all, limit)), nil
	}

	folded := foldText(q)
	digits := stripNonDigits(q)
	matchDigits := digits != ""

	var matched []*entity.Client
	for _, client := range all {
		if clientMatches(client, folded, digits, matchDigits) {
			matched = append(matched, client)
		}
	}
	return toClientResponses(capClients(matched, limit)), nil
}

func clientMatches(c *entity.Client, folded, digits string, matchDigits bool) bool {
	if containsFolded(c.Name, folded) ||
		containsFolded(c.Phone, folded) ||
		containsFolded(c.Email, folded) ||
		containsFolded(c.Address, folded) {
		return true
	}
	if matchDigits && phoneContains(c.Phone, digits) {
		return true
	}
	for _, code := range c.Codes {
		if containsFolded(code.Code, folded) ||
			containsFolded(code.AccountHolderName, folded) ||
			containsFolded(code.Service, folded) ||
			containsFolded(code.Address, folded) ||
			containsFolded(code.PhoneNumber, folded) {
			return true
		}
		if matchDigits && phoneContains(code.PhoneNumber, digits) {
			return true
		}
	}
	return false
}

func capClients(list []*entity.Client, limit int) []*entity.Client {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}

func containsFolded(field, foldedQuery string) bool {
	if field == "" {
		return false
	}
	return strings.Contains(foldText(field), foldedQuery)
}

func phoneContains(phone, digits string) bool {
	if phone == "" {
		return false
	}
	return strings.Contains(stripNonDigits(phone), digits)
}

// foldText baja a minúsculas y elimina diacríticos (NFD + quitar marcas),
// para que "Aïcha" y "aicha" se encuentren entre sí.
func foldText(s string) string {
	lower := strings.ToLower(s)
	// El transformer mantiene estado; se construye por llamada.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}

func stripNonDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
