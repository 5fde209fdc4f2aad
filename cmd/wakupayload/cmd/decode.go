package cmd

import (
	"encoding/hex"
	"fmt"
	"os"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/waku-org/go-waku-payload/payload"
)

var (
	decodeInFile    string
	decodeSymKeyHex string
	decodeAsymPriv  string
	decodeRaw       bool
)

var decodeCmd = &cobra.Command{
	Use:   "decode",
	Short: "Decode a Waku v1 message back into its payload",
	RunE:  runDecode,
}

func init() {
	decodeCmd.Flags().StringVar(&decodeInFile, "in", "-", "input file ('-' for stdin)")
	decodeCmd.Flags().StringVar(&decodeSymKeyHex, "sym-key", "", "hex 32-byte symmetric key")
	decodeCmd.Flags().StringVar(&decodeAsymPriv, "asym-priv", "", "hex secp256k1 recipient private key")
	decodeCmd.Flags().BoolVar(&decodeRaw, "raw", false, "input is raw bytes instead of hex")

	_ = viper.BindPFlag("decode.sym-key", decodeCmd.Flags().Lookup("sym-key"))
	_ = viper.BindPFlag("decode.asym-priv", decodeCmd.Flags().Lookup("asym-priv"))
}

func runDecode(c *cobra.Command, _ []string) error {
	raw, err := readInput(decodeInFile)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if !decodeRaw {
		raw, err = hex.DecodeString(trimNewline(raw))
		if err != nil {
			return fmt.Errorf("decoding hex input: %w", err)
		}
	}

	symKeyHex := firstNonEmpty(decodeSymKeyHex, viper.GetString("decode.sym-key"))
	asymPrivHex := firstNonEmpty(decodeAsymPriv, viper.GetString("decode.asym-priv"))

	var opts []payload.DecodeOption
	switch {
	case symKeyHex != "" && asymPrivHex != "":
		return fmt.Errorf("specify exactly one of --sym-key or --asym-priv")
	case symKeyHex != "":
		key, err := payload.HexToSymmetricKey(symKeyHex)
		if err != nil {
			return fmt.Errorf("--sym-key: %w", err)
		}
		opts = append(opts, payload.WithSymmetricDecodeKey(key))
	case asymPrivHex != "":
		priv, err := payload.PrivateKeyFromHex(asymPrivHex)
		if err != nil {
			return fmt.Errorf("--asym-priv: %w", err)
		}
		opts = append(opts, payload.WithAsymmetricPrivateKey(priv))
	default:
		return fmt.Errorf("specify exactly one of --sym-key or --asym-priv")
	}

	data, sig, err := payload.Decode(raw, opts...)
	if err != nil {
		return err
	}

	c.SilenceUsage = true
	if sig != nil && sig.PublicKey != nil {
		fmt.Fprintln(os.Stderr, "wakupayload: signed by", hex.EncodeToString(ethcrypto.FromECDSAPub(sig.PublicKey)))
	}
	_, err = os.Stdout.Write(data)
	return err
}

func trimNewline(b []byte) string {
	s := string(b)
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}
