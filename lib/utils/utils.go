package utils

import "math/rand"

func Xor(a, b bool) bool {
	return a && !b || !a && b
}

func BytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// AlnumString 生成长度为 l 的随机字母数字串
func AlnumString(l int) string {
	a := make([]byte, l)
	for i := 0; i < l; i++ {
		index := rand.Intn(62)
		if index < 10 {
			a[i] = byte(48 + index)
		} else if index < 36 {
			a[i] = byte(55 + index)
		} else {
			a[i] = byte(61 + index)
		}
	}
	return string(a)
}

// StringsToLine 把若干字符串转为一条命令行
func StringsToLine(strs ...string) [][]byte {
	res := make([][]byte, len(strs))
	for i, str := range strs {
		res[i] = []byte(str)
	}
	return res
}
