// Package jsonbody はレスポンスボディのJSONを生成する
//
// 出力形式は既存クライアントが期待するバイト列と一致させる:
//   - キーと値の区切りは ": "、要素の区切りは ", "
//   - キーは辞書順
//   - ASCII以外の文字は \uXXXX (BMP外はサロゲートペア) でエスケープ
//   - 末尾の改行なし
//   - 不正なUTF-8は U+FFFD として出力
package jsonbody

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf16"
)

// ContentType はボディのContent-Type
const ContentType = "application/json"

// Marshal は文字列マップをJSONオブジェクトに変換する
func Marshal(payload map[string]string) []byte {
	keys := make([]string, 0, len(payload))
	for k := range payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		writeString(&b, k)
		b.WriteString(": ")
		writeString(&b, payload[k])
	}
	b.WriteByte('}')
	return []byte(b.String())
}

// writeString はJSON文字列リテラルを書き込む
func writeString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r < 0x20 || (r >= 0x80 && r <= 0xffff):
				fmt.Fprintf(b, `\u%04x`, r)
			case r > 0xffff:
				r1, r2 := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, r1, r2)
			default:
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
