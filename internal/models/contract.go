package models

import "time"

// PaymentType enumerates the five supported payment plans.
type PaymentType string

const (
	PaymentPixAVista         PaymentType = "pix_avista"
	PaymentCartaoAVista      PaymentType = "cartao_avista"
	PaymentPixEntrada        PaymentType = "pix_entrada"
	PaymentParceladoSemJuros PaymentType = "parcelado_sem_juros"
	PaymentParceladoComJuros PaymentType = "parcelado_com_juros"
)

// Known reports whether pt is one of the five enumerated payment types.
func (pt PaymentType) Known() bool {
	switch pt {
	case PaymentPixAVista, PaymentCartaoAVista, PaymentPixEntrada,
		PaymentParceladoSemJuros, PaymentParceladoComJuros:
		return true
	}
	return false
}

// Contract is a write-once document snapshot. All display strings are
// derived from these fields at render time.
type Contract struct {
	ID                 string      `json:"id"`
	OwnerID            string      `json:"owner_id"`
	ClientName         string      `json:"client_name"`
	ClientCPFCNPJ      string      `json:"client_cpf_cnpj,omitempty"`
	ClientAddress      string      `json:"client_address,omitempty"`
	ClientCity         string      `json:"client_city,omitempty"`
	ClientState        string      `json:"client_state,omitempty"`
	ServiceType        string      `json:"service_type"`
	ServiceDescription string      `json:"service_description"`
	Value              float64     `json:"value"`
	PaymentType        PaymentType `json:"payment_type"`
	Installments       int         `json:"installments"`
	EntryValue         float64     `json:"entry_value"`
	PaymentTerms       string      `json:"payment_terms,omitempty"`
	StartDate          time.Time   `json:"start_date"`
	DeliveryDays       int         `json:"delivery_days"`
	MaterialsDays      int         `json:"materials_days"`
	MaintenanceDays    int         `json:"maintenance_days"`
	ExcludedServices   []string    `json:"excluded_services,omitempty"`
	Witness1           string      `json:"witness_1,omitempty"`
	Witness2           string      `json:"witness_2,omitempty"`
	CreatedAt          time.Time   `json:"created_at"`
}
