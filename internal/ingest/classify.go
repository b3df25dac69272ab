package ingest

import (
	"strings"

	"finsight/internal/domain"
)

// Classification is the detected document type with supporting evidence.
type Classification struct {
	DocumentType domain.DocumentType
	Confidence   float64
	Indicators   []string
}

// Indicator keyword lists per document type.
var (
	bankIndicators     = []string{"transaction", "debit", "credit", "balance", "bank", "statement", "account"}
	salesIndicators    = []string{"invoice", "customer", "sales", "gst", "cgst", "sgst", "bill"}
	purchaseIndicators = []string{"purchase", "vendor", "supplier", "po", "tds", "payable"}
)

// Classify scores the content and filename against indicator keyword lists
// and picks the highest-scoring document type. Ties resolve in the order
// bank statement, sales register, purchase register. A zero score yields
// type "other" with low confidence.
func Classify(content, filename string) Classification {
	content = strings.ToLower(content)
	filename = strings.ToLower(filename)

	bankHits := matchIndicators(bankIndicators, content, filename)
	salesHits := matchIndicators(salesIndicators, content, filename)
	purchaseHits := matchIndicators(purchaseIndicators, content, filename)

	maxScore := len(bankHits)
	if len(salesHits) > maxScore {
		maxScore = len(salesHits)
	}
	if len(purchaseHits) > maxScore {
		maxScore = len(purchaseHits)
	}

	if maxScore == 0 {
		return Classification{
			DocumentType: domain.DocTypeOther,
			Confidence:   0.2,
		}
	}

	var docType domain.DocumentType
	var hits []string
	switch {
	case len(bankHits) == maxScore:
		docType, hits = domain.DocTypeBankStatement, bankHits
	case len(salesHits) == maxScore:
		docType, hits = domain.DocTypeSalesRegister, salesHits
	default:
		docType, hits = domain.DocTypePurchaseRegister, purchaseHits
	}

	confidence := 0.5 + float64(maxScore)*0.1
	if confidence > 0.9 {
		confidence = 0.9
	}

	return Classification{
		DocumentType: docType,
		Confidence:   confidence,
		Indicators:   hits,
	}
}

func matchIndicators(indicators []string, content, filename string) []string {
	var hits []string
	for _, ind := range indicators {
		if strings.Contains(content, ind) || strings.Contains(filename, ind) {
			hits = append(hits, ind)
		}
	}
	return hits
}
