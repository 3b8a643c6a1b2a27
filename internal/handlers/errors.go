package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/store-reservations/internal/httperr"
	"github.com/BruksfildServices01/store-reservations/internal/validators"
)

type errorInfo struct {
	status  int
	message string
}

var businessErrors = map[string]errorInfo{
	httperr.CodeProductNotFound:     {http.StatusNotFound, "Produto não encontrado."},
	httperr.CodeProductUnavailable:  {http.StatusConflict, "Este produto já não está disponível para reserva."},
	httperr.CodeProductIDTaken:      {http.StatusConflict, "Já existe um produto com este identificador."},
	httperr.CodeReservationNotFound: {http.StatusNotFound, "Reserva não encontrada."},
	httperr.CodeInvalidStatus:       {http.StatusBadRequest, "Status inválido."},
	httperr.CodeInvalidTransition:   {http.StatusConflict, "Esta alteração de status não é permitida."},
	httperr.CodeNumberExhausted:     {http.StatusServiceUnavailable, "Não foi possível gerar o número da reserva. Tente novamente."},
	httperr.CodeInvalidCredentials:  {http.StatusUnauthorized, "Senha incorreta."},

	validators.CodeFullNameRequired: {http.StatusBadRequest, "Informe o nome completo."},
	validators.CodePhoneRequired:    {http.StatusBadRequest, "Informe o telefone."},
	validators.CodeAddressRequired:  {http.StatusBadRequest, "Informe a morada."},
	validators.CodeEmailRequired:    {http.StatusBadRequest, "Informe o e-mail."},
	validators.CodeInvalidEmail:     {http.StatusBadRequest, "E-mail inválido."},
	validators.CodeInvalidSize:      {http.StatusBadRequest, "Tamanho indisponível para este produto."},
	validators.CodeInvalidColor:     {http.StatusBadRequest, "Cor indisponível para este produto."},

	validators.CodeNameRequired:    {http.StatusBadRequest, "Informe o nome do produto."},
	validators.CodeInvalidPrice:    {http.StatusBadRequest, "Preço inválido."},
	validators.CodeInvalidGender:   {http.StatusBadRequest, "Género inválido."},
	validators.CodeInvalidCategory: {http.StatusBadRequest, "Categoria inválida para este género."},
	validators.CodeSizesRequired:   {http.StatusBadRequest, "Informe pelo menos um tamanho."},
	validators.CodeColorsRequired:  {http.StatusBadRequest, "Informe pelo menos uma cor."},
}

// respondError writes business errors with their mapped status and anything
// else as a 500.
func respondError(c *gin.Context, err error) {
	code := httperr.CodeOf(err)
	if info, ok := businessErrors[code]; ok {
		switch info.status {
		case http.StatusBadRequest:
			httperr.BadRequest(c, code, info.message)
		case http.StatusUnauthorized:
			httperr.Unauthorized(c, code, info.message)
		case http.StatusNotFound:
			httperr.NotFound(c, code, info.message)
		case http.StatusConflict:
			httperr.Conflict(c, code, info.message)
		default:
			httperr.Write(c, info.status, code, info.message)
		}
		return
	}

	zap.L().Error("request failed",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	httperr.Internal(c, "internal_error", "Erro interno.")
}

func badRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}
