package vtype

const djb2Seed = uint32(5381)

// djb2 对每个字节计算 h = h*33 + c，结果对 2^32 取模
func djb2(data []byte) uint32 {
	hash := djb2Seed
	for i := 0; i < len(data); i++ {
		hash = hash*33 + uint32(data[i])
	}
	return hash
}
