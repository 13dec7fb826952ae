package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

// Алфавит без визуально похожих символов (0/O, 1/I/l): ключ доступа
// мастер вводит вручную.
const accessKeyAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	accessKeyGroups    = 4
	accessKeyGroupSize = 4
)

// GenerateAccessKey создаёт ключ доступа мастера вида XXXX-XXXX-XXXX-XXXX.
// В базе хранится только хеш; открытый ключ показывается единственный раз.
func GenerateAccessKey() (string, error) {
	groups := make([]string, 0, accessKeyGroups)
	max := big.NewInt(int64(len(accessKeyAlphabet)))

	for i := 0; i < accessKeyGroups; i++ {
		var sb strings.Builder
		for j := 0; j < accessKeyGroupSize; j++ {
			n, err := rand.Int(rand.Reader, max)
			if err != nil {
				return "", fmt.Errorf("ошибка генерации ключа доступа: %w", err)
			}
			sb.WriteByte(accessKeyAlphabet[n.Int64()])
		}
		groups = append(groups, sb.String())
	}

	return strings.Join(groups, "-"), nil
}
