package service

import (
	"crypto/sha1"
	"encoding/hex"
	"sort"
	"strings"
)

// UploadSignature 按参数名升序拼接 key=value 对，用 & 连接后追加密钥，
// 返回 SHA1 十六进制摘要。与主流媒体云的直传签名格式保持一致.
func UploadSignature(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}

	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))

	return hex.EncodeToString(sum[:])
}
