package httperr

import (
	"fmt"
	"strings"
)

// FieldIssue aponta um campo reprovado na validação do agendamento.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrega os campos inválidos de uma requisição; o usuário
// consegue corrigir e reenviar.
type ValidationError struct {
	Issues []FieldIssue
}

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e.Issues))
	for _, i := range e.Issues {
		fields = append(fields, i.Field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
