package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/waku-org/go-waku-payload/payload"
)

var (
	encodePayloadFile string
	encodeSignKeyHex  string
	encodeSymKeyHex   string
	encodeAsymPubHex  string
	encodeOutFile     string
	encodeRaw         bool
)

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode a payload into a Waku v1 message",
	RunE:  runEncode,
}

func init() {
	encodeCmd.Flags().StringVar(&encodePayloadFile, "payload-file", "", "file containing the raw payload ('-' for stdin)")
	encodeCmd.Flags().StringVar(&encodeSignKeyHex, "sign-key", "", "hex secp256k1 private key to sign the envelope with")
	encodeCmd.Flags().StringVar(&encodeSymKeyHex, "sym-key", "", "hex 32-byte symmetric key")
	encodeCmd.Flags().StringVar(&encodeAsymPubHex, "asym-pub", "", "hex uncompressed secp256k1 recipient public key")
	encodeCmd.Flags().StringVar(&encodeOutFile, "out", "-", "output file ('-' for stdout)")
	encodeCmd.Flags().BoolVar(&encodeRaw, "raw", false, "write raw bytes instead of hex")

	_ = viper.BindPFlag("encode.sym-key", encodeCmd.Flags().Lookup("sym-key"))
	_ = viper.BindPFlag("encode.asym-pub", encodeCmd.Flags().Lookup("asym-pub"))
	_ = encodeCmd.MarkFlagRequired("payload-file")
}

func runEncode(c *cobra.Command, _ []string) error {
	data, err := readInput(encodePayloadFile)
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	symKeyHex := firstNonEmpty(encodeSymKeyHex, viper.GetString("encode.sym-key"))
	asymPubHex := firstNonEmpty(encodeAsymPubHex, viper.GetString("encode.asym-pub"))

	var opts []payload.EncodeOption
	if encodeSignKeyHex != "" {
		priv, err := payload.PrivateKeyFromHex(encodeSignKeyHex)
		if err != nil {
			return fmt.Errorf("--sign-key: %w", err)
		}
		opts = append(opts, payload.WithSigningKey(priv))
	}
	switch {
	case symKeyHex != "" && asymPubHex != "":
		return fmt.Errorf("specify exactly one of --sym-key or --asym-pub")
	case symKeyHex != "":
		key, err := payload.HexToSymmetricKey(symKeyHex)
		if err != nil {
			return fmt.Errorf("--sym-key: %w", err)
		}
		opts = append(opts, payload.WithSymmetricKey(key))
	case asymPubHex != "":
		pub, err := payload.PublicKeyFromHex(asymPubHex)
		if err != nil {
			return fmt.Errorf("--asym-pub: %w", err)
		}
		opts = append(opts, payload.WithAsymmetricPublicKey(pub))
	default:
		return fmt.Errorf("specify exactly one of --sym-key or --asym-pub")
	}

	out, _, err := payload.Encode(data, opts...)
	if err != nil {
		return err
	}

	c.SilenceUsage = true
	return writeOutput(encodeOutFile, out, encodeRaw)
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path string, data []byte, raw bool) error {
	out := os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if raw {
		_, err := out.Write(data)
		return err
	}
	_, err := fmt.Fprintln(out, hex.EncodeToString(data))
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
