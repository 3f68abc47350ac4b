package performing

import (
	"github.com/vfg2006/salon-ops-api/internal/domain"
)

// aggregateFeedback conta as respostas de pesquisa por profissional.
// As respostas chegam chaveadas pelo ID de usuário da plataforma, então a
// atribuição passa pelo índice reverso do diretório de equipe; respostas
// de usuários fora do diretório são descartadas.
func aggregateFeedback(responses []*domain.FeedbackResponse, directory *domain.StaffDirectory) map[string]int {
	byStaff := make(map[string]int)

	for _, response := range responses {
		staffID, ok := directory.ResolveUserID(response.UserID)
		if !ok {
			continue
		}

		byStaff[staffID]++
	}

	return byStaff
}
