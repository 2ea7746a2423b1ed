package domain

import "time"

// FinanceKind splits entries into money in and money out. The entry value is
// sign-less; the kind determines direction.
type FinanceKind string

const (
	FinanceReceita FinanceKind = "receita"
	FinanceDespesa FinanceKind = "despesa"
)

func (k FinanceKind) Valid() bool {
	return k == FinanceReceita || k == FinanceDespesa
}

// ExpenseType classifies a despesa as fixed or variable. Meaningful only when
// the kind is despesa; receita entries carry nil.
type ExpenseType string

const (
	ExpenseFixa     ExpenseType = "fixa"
	ExpenseVariavel ExpenseType = "variavel"
)

func (t ExpenseType) Valid() bool {
	return t == ExpenseFixa || t == ExpenseVariavel
}

// FinanceCategory is the closed set of cost centers.
type FinanceCategory string

const (
	CategoryVendas      FinanceCategory = "vendas"
	CategoryTrafegoPago FinanceCategory = "trafego_pago"
	CategoryFerramentas FinanceCategory = "ferramentas"
	CategoryComissoes   FinanceCategory = "comissoes"
	CategoryImpostos    FinanceCategory = "impostos"
	CategoryServicos    FinanceCategory = "servicos"
	CategoryOutros      FinanceCategory = "outros"
)

// FinanceCategories lists every cost center, in display order.
var FinanceCategories = []FinanceCategory{
	CategoryVendas,
	CategoryTrafegoPago,
	CategoryFerramentas,
	CategoryComissoes,
	CategoryImpostos,
	CategoryServicos,
	CategoryOutros,
}

func (c FinanceCategory) Valid() bool {
	for _, known := range FinanceCategories {
		if c == known {
			return true
		}
	}
	return false
}

// FinanceEntry is one organization-wide ledger row, attributed to Day.
type FinanceEntry struct {
	ID          string          `json:"id"`
	Day         string          `json:"day"`
	Kind        FinanceKind     `json:"kind"`
	ExpenseType *ExpenseType    `json:"expense_type,omitempty"`
	Category    FinanceCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	Value       float64         `json:"value"`
	CreatedAt   time.Time       `json:"created_at"`
}
