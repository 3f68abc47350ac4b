// Package store implementa a busca paginada exaustiva sobre o repositório
// de registros brutos. Uma única consulta limitada não traz o período todo
// de um tenant movimentado; o loop precisa esgotar as páginas.
package store

import (
	"fmt"

	"github.com/pkg/errors"
)

// DefaultPageSize é o tamanho fixo de página imposto às consultas ao banco
const DefaultPageSize = 1000

// ErrStoreUnavailable indica falha em alguma página da busca. A busca
// inteira é abortada: nunca devolvemos resultado parcial.
var ErrStoreUnavailable = errors.New("fonte de registros indisponível")

// PageFunc busca uma página de até limit linhas a partir de offset
type PageFunc[T any] func(limit, offset int) ([]T, error)

// FetchAll concatena todas as páginas de page até a exaustão. A ordem é a
// que o banco devolver; o chamador não deve assumir ordem cronológica.
// Invariante de término: hasMore = len(página) == pageSize.
func FetchAll[T any](page PageFunc[T]) ([]T, error) {
	return FetchAllWithPageSize(page, DefaultPageSize)
}

// FetchAllWithPageSize é FetchAll com tamanho de página explícito,
// exposto para os testes exercitarem o loop com páginas pequenas
func FetchAllWithPageSize[T any](page PageFunc[T], pageSize int) ([]T, error) {
	if pageSize <= 0 {
		return nil, errors.Wrap(ErrStoreUnavailable, fmt.Sprintf("tamanho de página inválido: %d", pageSize))
	}

	all := make([]T, 0, pageSize)
	offset := 0

	for {
		rows, err := page(pageSize, offset)
		if err != nil {
			return nil, errors.Wrap(ErrStoreUnavailable, err.Error())
		}

		all = append(all, rows...)

		// Página menor que o tamanho fixo significa que o banco esgotou
		if len(rows) < pageSize {
			return all, nil
		}

		offset += len(rows)
	}
}
