package zkpauth

import "math/big"

// Chosen from Internet Engineering Task Force RFC 3526:
// https://datatracker.ietf.org/doc/rfc3526
// === 2048-bit MODP group (Group 14) ===
const pHex = "FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E088A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A431B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C42E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B1FE649286651ECE45B3DC2007CB8A163BF0598DA48361C55D39A69163FA8FD24CF5F83655D23DCA3AD961C62F356208552BB9ED529077096966D670C354E4ABC9804F1746C08CA18217C32905E462E36CE3BE39E772C180E86039B2783A2EC07A28FB5C55DF06F4C52C9DE2BCBF6955817183995497CEA956AE515D2261898FA051015728E5A8AACAA68FFFFFFFFFFFFFFFF"

// q = (p - 1) / 2, and q is itself prime (a "safe prime" construction).
const qHex = "7FFFFFFFFFFFFFFFE487ED5110B4611A62633145C06E0E68948127044533E63A0105DF531D89CD9128A5043CC71A026EF7CA8CD9E69D218D98158536F92F8A1BA7F09AB6B6A8E122F242DABB312F3F637A262174D31BF6B585FFAE5B7A035BF6F71C35FDAD44CFD2D74F9208BE258FF324943328F6722D9EE1003E5C50B1DF82CC6D241B0E2AE9CD348B1FD47E9267AFC1B2AE91EE51D6CB0E3179AB1042A95DCF6A9483B84B4B36B3861AA7255E4C0278BA3604650C10BE19482F23171B671DF1CF3B960C074301CD93C1D17603D147DAE2AEF837A62964EF15E5FB4AAC0B8C1CCAA4BE754AB5728AE9130C4C7D02880AB9472D455655347FFFFFFFFFFFFFFF"

// h = g^f mod p, where f = 2^127 - 1. h generates the same order-q subgroup
// as g; its discrete log base g is unknown (assuming DLP hardness), which is
// what makes the commitment (g^x, h^x) binding.
const hHex = "B4634B1B537228E0DB833C13BFDB0B651049549D127BDC1C188973E5C4917F4E46AC0060EA7DA9D66F489DD3B3D8C75EEA3F80D8CCDA9872D9B492BA0F485D253015271707FC0E70597717A928B2EC0DCF89677A2119B56A3CE7D7B8B7FD66A99BF03352D039C2C1A5BD0B224CD4AECB1B58613307BA3272FECB08EB3D5C81F2999B5DDB1F36B26DA255E985F817F1F846AFF948973E0C7288D266E444AA956D56CE35E0A31A4FE626E15D888C1CC09897A1FAD300550364416C82562026788E6753CA06D62BB0D3B3976AF8FE002EA02D279941F4BD12536C78E3B091D0DE474E8FF050FD31F78FB6A1CAB0B9E9E0A54D6CCDA5F1A04B2C1B26557385370ED"

// P, Q, G, and H are the fixed, public group parameters shared by every
// client and server. They are parsed once at init time from the hex
// literals above and never recomputed; H in particular is a precomputed
// power of G, not a value derived from randomness at runtime.
var (
	P = mustHex(pHex)
	Q = mustHex(qHex)
	G = big.NewInt(2)
	H = mustHex(hHex)
)

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("zkpauth: malformed group parameter literal")
	}
	return n
}
