package impl

import (
	"fmt"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/service"
)

func registrationReceivedMail(to string, partner *entity.PartnerSupplier) *service.Mail {
	return &service.Mail{
		To:      to,
		Subject: "Cadastro recebido",
		Body: fmt.Sprintf(
			"Olá, %s!\n\nRecebemos o cadastro da sua empresa. Nossa equipe vai analisar os dados e você receberá um e-mail assim que houver uma resposta.\n",
			partner.TradeName,
		),
	}
}

// statusChangedMail returns nil for statuses that are not announced.
func statusChangedMail(to string, partner *entity.PartnerSupplier) *service.Mail {
	switch partner.Status {
	case entity.PartnerStatusApproved:
		return &service.Mail{
			To:      to,
			Subject: "Cadastro aprovado",
			Body: fmt.Sprintf(
				"Olá, %s!\n\nSeu cadastro foi aprovado. Sua empresa já está visível para os clientes.\n",
				partner.TradeName,
			),
		}
	case entity.PartnerStatusRejected:
		return &service.Mail{
			To:      to,
			Subject: "Cadastro não aprovado",
			Body: fmt.Sprintf(
				"Olá, %s!\n\nInfelizmente seu cadastro não foi aprovado. Revise os dados enviados e entre em contato com o suporte.\n",
				partner.TradeName,
			),
		}
	default:
		return nil
	}
}
