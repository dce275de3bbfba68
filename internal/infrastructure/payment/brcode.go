package payment

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EMV BR Code tags used by the PIX static payload
const (
	tagPayloadFormat       = "00"
	tagPointOfInitiation   = "01"
	tagMerchantAccount     = "26"
	tagMerchantCategory    = "52"
	tagTransactionCurrency = "53"
	tagTransactionAmount   = "54"
	tagCountryCode         = "58"
	tagMerchantName        = "59"
	tagMerchantCity        = "60"
	tagAdditionalData      = "62"
	tagCRC                 = "63"

	pixGUI       = "BR.GOV.BCB.PIX"
	currencyBRL  = "986"
	countryBR    = "BR"
	categoryNone = "0000"
)

// emvField encodes a tag-length-value triple. Lengths are two decimal
// digits per the EMV QRCPS spec.
func emvField(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// crc16CCITT computes CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF)
// over the payload bytes, as required by tag 63.
func crc16CCITT(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = (crc << 1) ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// BuildBRCode assembles a static PIX BR Code payload. Merchant name is
// truncated to 25 characters, city to 15 and txid to 25 per the BCB
// limits.
func BuildBRCode(key, merchantName, city string, amountCents int64, txid string) string {
	amount := decimal.NewFromInt(amountCents).Div(decimal.NewFromInt(100)).StringFixed(2)

	merchantAccount := emvField(tagMerchantAccount,
		emvField("00", pixGUI)+emvField("01", key))
	additionalData := emvField(tagAdditionalData,
		emvField("05", truncate(txid, 25)))

	var b strings.Builder
	b.WriteString(emvField(tagPayloadFormat, "01"))
	b.WriteString(emvField(tagPointOfInitiation, "12"))
	b.WriteString(merchantAccount)
	b.WriteString(emvField(tagMerchantCategory, categoryNone))
	b.WriteString(emvField(tagTransactionCurrency, currencyBRL))
	b.WriteString(emvField(tagTransactionAmount, amount))
	b.WriteString(emvField(tagCountryCode, countryBR))
	b.WriteString(emvField(tagMerchantName, truncate(merchantName, 25)))
	b.WriteString(emvField(tagMerchantCity, truncate(city, 15)))
	b.WriteString(additionalData)
	b.WriteString(tagCRC + "04")

	payload := b.String()
	crc := crc16CCITT([]byte(payload))
	return payload + fmt.Sprintf("%04X", crc)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
