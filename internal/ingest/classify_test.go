package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"finsight/internal/domain"
)

func TestClassify_BankStatement(t *testing.T) {
	content := "Date,Description,Debit,Credit,Balance\n2025-01-15,NEFT,5000,,95000"

	c := Classify(content, "bank_statement_q1.csv")

	assert.Equal(t, domain.DocTypeBankStatement, c.DocumentType)
	assert.GreaterOrEqual(t, c.Confidence, 0.5)
	assert.Contains(t, c.Indicators, "debit")
}

func TestClassify_SalesRegister(t *testing.T) {
	content := "Invoice No,Customer Name,CGST,SGST,Total\nINV-1,Acme,900,900,11800"

	c := Classify(content, "sales_q1.csv")

	assert.Equal(t, domain.DocTypeSalesRegister, c.DocumentType)
}

func TestClassify_PurchaseRegister(t *testing.T) {
	content := "PO No,Vendor Name,Supplier GSTIN,TDS,Net Payable\nPO-1,Acme,29X,100,900"

	c := Classify(content, "purchases.xlsx")

	assert.Equal(t, domain.DocTypePurchaseRegister, c.DocumentType)
}

func TestClassify_Other(t *testing.T) {
	c := Classify("lorem ipsum dolor", "notes.csv")

	assert.Equal(t, domain.DocTypeOther, c.DocumentType)
	assert.Equal(t, 0.2, c.Confidence)
	assert.Empty(t, c.Indicators)
}

func TestClassify_ConfidenceCapped(t *testing.T) {
	content := "transaction debit credit balance bank statement account"

	c := Classify(content, "bank.csv")

	assert.Equal(t, domain.DocTypeBankStatement, c.DocumentType)
	assert.Equal(t, 0.9, c.Confidence)
}

func TestClassify_TieBreaksTowardBank(t *testing.T) {
	// "account" and "payable" give one hit each.
	c := Classify("accounts payable", "doc.csv")
	assert.Equal(t, domain.DocTypeBankStatement, c.DocumentType)
}
