package payment

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCRC16CCITT(t *testing.T) {
	t.Run("matches the CCITT-FALSE check value", func(t *testing.T) {
		// Standard check input for CRC-16/CCITT-FALSE
		assert.Equal(t, uint16(0x29B1), crc16CCITT([]byte("123456789")))
	})

	t.Run("empty input returns the init value", func(t *testing.T) {
		assert.Equal(t, uint16(0xFFFF), crc16CCITT(nil))
	})
}

func TestEMVField(t *testing.T) {
	assert.Equal(t, "000201", emvField("00", "01"))
	assert.Equal(t, "5802BR", emvField("58", "BR"))
	assert.Equal(t, "0014BR.GOV.BCB.PIX", emvField("00", "BR.GOV.BCB.PIX"))
}

func TestBuildBRCode(t *testing.T) {
	payload := BuildBRCode("+5518997053664", "Disk Mensagem", "CIDADE", 7000, "DM000042")

	t.Run("starts with payload format and initiation method", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(payload, "000201"+"010212"))
	})

	t.Run("carries the pix key inside the merchant account", func(t *testing.T) {
		assert.Contains(t, payload, "BR.GOV.BCB.PIX")
		assert.Contains(t, payload, "+5518997053664")
	})

	t.Run("encodes amount in reais with two decimals", func(t *testing.T) {
		assert.Contains(t, payload, emvField("54", "70.00"))
	})

	t.Run("carries country, name, city and txid", func(t *testing.T) {
		assert.Contains(t, payload, "5802BR")
		assert.Contains(t, payload, emvField("59", "Disk Mensagem"))
		assert.Contains(t, payload, emvField("60", "CIDADE"))
		assert.Contains(t, payload, emvField("05", "DM000042"))
	})

	t.Run("ends with a valid CRC over the preceding payload", func(t *testing.T) {
		require.Regexp(t, regexp.MustCompile(`6304[0-9A-F]{4}$`), payload)

		base := payload[:len(payload)-4]
		assert.Equal(t, fmt.Sprintf("%04X", crc16CCITT([]byte(base))), payload[len(payload)-4:])
	})

	t.Run("truncates merchant name and city", func(t *testing.T) {
		long := BuildBRCode("key", "A merchant name that is far too long", "A city name that is too long", 100, "DM000001")
		assert.Contains(t, long, emvField("59", "A merchant name that is f"))
		assert.Contains(t, long, emvField("60", "A city name tha"))
	})
}
