package session

// User-facing copy is pt-PT: the event targets the Portuguese market.

const (
	messageGenericDecline = "O pagamento não foi concluído. Verifique os dados e tente novamente."
	messageTransient      = "Não foi possível contactar o serviço de pagamentos. Tente novamente dentro de momentos."
	messageUnavailable    = "Os pagamentos estão temporariamente indisponíveis. Por favor, tente mais tarde."
	messageMountFailed    = "Não foi possível carregar o formulário de pagamento. Atualize a página e tente novamente."
)

// processorMessages translates processor decline/error codes. Anything
// missing falls back to the generic decline copy.
var processorMessages = map[string]string{
	"card_declined":                         "O cartão foi recusado. Tente outro cartão ou escolha Multibanco.",
	"expired_card":                          "O cartão está expirado. Utilize outro cartão.",
	"incorrect_cvc":                         "O código de segurança (CVC) está incorreto.",
	"incorrect_number":                      "O número do cartão está incorreto.",
	"insufficient_funds":                    "O cartão não tem fundos suficientes.",
	"payment_intent_authentication_failure": "A autenticação do pagamento falhou. Tente novamente.",
	"processing_error":                      "Ocorreu um erro ao processar o pagamento. Tente novamente.",
}

// LocalizedProcessorMessage maps a processor error code to user-facing
// pt-PT copy.
func LocalizedProcessorMessage(code string) string {
	if message, ok := processorMessages[code]; ok {
		return message
	}

	return messageGenericDecline
}
