package models

// ConsumoProduto registra quanto de um produto um agendamento usa.
// É lido pelo ledger quando o agendamento é concluído.
type ConsumoProduto struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AgendamentoID uint `gorm:"index;not null" json:"agendamento_id"`

	ProdutoID uint    `gorm:"not null" json:"produto_id"`
	Produto   Produto `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"produto"`

	Quantidade int `gorm:"not null" json:"quantidade"`
}
