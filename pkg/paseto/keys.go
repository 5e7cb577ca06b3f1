package pasetotoken

import paseto "aidanwoods.dev/go-paseto"

// Keys holds the verification key material for the configured mode.
type Keys struct {
	Mode Mode

	Symmetric *paseto.V4SymmetricKey
	Public    *paseto.V4AsymmetricPublicKey
}

// KeyStrings is the hex-encoded form carried in configuration.
type KeyStrings struct {
	Mode Mode

	SymmetricHex string
	PublicHex    string
}

// LoadKeys decodes the hex key for the selected mode.
func LoadKeys(in KeyStrings) (Keys, error) {
	out := Keys{Mode: in.Mode}

	switch in.Mode {
	case ModeLocal:
		if in.SymmetricHex == "" {
			return Keys{}, ErrConfig{Msg: "symmetric key hex is required in local mode"}
		}
		k, err := paseto.V4SymmetricKeyFromHex(in.SymmetricHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid symmetric key hex: " + err.Error()}
		}
		out.Symmetric = &k

	case ModePublic:
		if in.PublicHex == "" {
			return Keys{}, ErrConfig{Msg: "public key hex is required in public mode"}
		}
		k, err := paseto.NewV4AsymmetricPublicKeyFromHex(in.PublicHex)
		if err != nil {
			return Keys{}, ErrConfig{Msg: "invalid public key hex: " + err.Error()}
		}
		out.Public = &k

	default:
		return Keys{}, ErrConfig{Msg: "unknown mode"}
	}

	return out, nil
}
