package store

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePager simula um banco com dataset fixo e tamanho de página limitado
func fakePager(total int) (PageFunc[int], *int) {
	calls := 0
	dataset := make([]int, total)
	for i := range dataset {
		dataset[i] = i
	}

	return func(limit, offset int) ([]int, error) {
		calls++
		if offset >= len(dataset) {
			return nil, nil
		}
		end := offset + limit
		if end > len(dataset) {
			end = len(dataset)
		}
		return dataset[offset:end], nil
	}, &calls
}

func TestFetchAll_ConcatenaTodasAsPaginas(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		pageSize      int
		expectedCalls int
	}{
		{name: "dataset vazio", total: 0, pageSize: 10, expectedCalls: 1},
		{name: "menor que uma página", total: 7, pageSize: 10, expectedCalls: 1},
		{name: "múltiplas páginas com resto", total: 25, pageSize: 10, expectedCalls: 3},
		// Última página exatamente do tamanho da página: uma chamada extra
		// vazia encerra o loop, nunca mais que isso
		{name: "múltiplo exato do tamanho da página", total: 30, pageSize: 10, expectedCalls: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, calls := fakePager(tt.total)

			result, err := FetchAllWithPageSize(page, tt.pageSize)
			require.NoError(t, err)

			assert.Len(t, result, tt.total)
			assert.Equal(t, tt.expectedCalls, *calls)

			// O resultado é a concatenação exata das páginas, na ordem
			for i, v := range result {
				assert.Equal(t, i, v)
			}
		})
	}
}

func TestFetchAll_AbortaNaFalhaDePagina(t *testing.T) {
	calls := 0
	page := func(limit, offset int) ([]string, error) {
		calls++
		if calls == 2 {
			return nil, fmt.Errorf("connection refused")
		}
		out := make([]string, limit)
		return out, nil
	}

	result, err := FetchAllWithPageSize(page, 5)

	// Nada parcial: a falha de qualquer página descarta tudo
	assert.Nil(t, result)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
}

func TestFetchAll_TamanhoDePaginaInvalido(t *testing.T) {
	_, err := FetchAllWithPageSize(func(limit, offset int) ([]int, error) {
		return nil, nil
	}, 0)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreUnavailable))
}
