package usecase_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gestion-clientes/internal/application/dto"
	"github.com/jhoicas/gestion-clientes/internal/application/usecase"
	"github.com/jhoicas/gestion-clientes/internal/domain/entity"
)

func seedSearchClients(t *testing.T, uc *usecase.ClientUseCase) {
	t.Helper()
	fixtures := []dto.CreateClientRequest{
		{
			Name:  "Ahmed Benali",
			Phone: "0612345678",
			Codes: []entity.ServiceCode{{Service: "orange", Code: "OR-4411"}},
		},
		{
			Name:  "Aïcha Mansouri",
			Email: "aicha@example.com",
			Codes: []entity.ServiceCode{{Service: "water", Code: "W-100", PhoneNumber: "0655443322"}},
		},
		{
			Name:    "Karim Tazi",
			Address: "12 Rue Orangeraie, Casablanca",
		},
		{
			Name:  "Samira El Fassi",
			Codes: []entity.ServiceCode{{Service: "inwi", Code: "IN-9", AccountHolderName: "Orange Boutique"}},
		},
		{
			Name:  "Driss Alami",
			Phone: "0699999999",
			Codes: []entity.ServiceCode{{Service: "electricity", Code: "EL-7"}},
		},
	}
	for _, f := range fixtures {
		_, err := uc.Create(f)
		require.NoError(t, err)
	}
}

func names(list []*dto.ClientResponse) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

// "orange" aparece como servicio, en una dirección y en un titular: los
// tres coinciden; nadie más.
func TestSearch_SubcadenaSinMayusculas(t *testing.T) {
	uc, _, _ := newClientFixture()
	seedSearchClients(t, uc)

	got, err := uc.Search("ORANGE", 0)
	require.NoError(t, err)

	assert.ElementsMatch(t,
		[]string{"Ahmed Benali", "Karim Tazi", "Samira El Fassi"},
		names(got))
}

// Los acentos no cuentan: "aicha" encuentra a "Aïcha".
func TestSearch_SinAcentos(t *testing.T) {
	uc, _, _ := newClientFixture()
	seedSearchClients(t, uc)

	got, err := uc.Search("aicha", 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Aïcha Mansouri"}, names(got))
}

// Una consulta con dígitos compara además los teléfonos normalizados.
func TestSearch_TelefonoPorDigitos(t *testing.T) {
	uc, _, _ := newClientFixture()
	seedSearchClients(t, uc)

	got, err := uc.Search("06 12-34-56", 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Ahmed Benali"}, names(got))

	// También sobre el phoneNumber anidado del código.
	got, err = uc.Search("0655 44", 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Aïcha Mansouri"}, names(got))
}

// Sin dígitos en la consulta no hay comparación normalizada de teléfonos:
// una consulta de letras jamás matchea un teléfono.
func TestSearch_SinDigitosNoMiraTelefonos(t *testing.T) {
	uc, _, _ := newClientFixture()
	seedSearchClients(t, uc)

	got, err := uc.Search("zzz", 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearch_ConsultaVaciaDevuelveTodo(t *testing.T) {
	uc, _, _ := newClientFixture()
	seedSearchClients(t, uc)

	got, err := uc.Search("   ", 0)
	require.NoError(t, err)
	assert.Len(t, got, 5)
}

// El tope interactivo corta el resultado (la UI pasa 10).
func TestSearch_TopeInteractivo(t *testing.T) {
	uc, _, _ := newClientFixture()
	for i := 0; i < 12; i++ {
		_, err := uc.Create(dto.CreateClientRequest{Name: fmt.Sprintf("Cliente Orange %d", i)})
		require.NoError(t, err)
	}

	got, err := uc.Search("orange", 10)
	require.NoError(t, err)
	assert.Len(t, got, 10)

	got, err = uc.Search("orange", 0)
	require.NoError(t, err)
	assert.Len(t, got, 12, "sin tope la operación bulk devuelve todo")
}
