package commands

import (
	"fmt"
	"path/filepath"

	"prime_vault_service/internal/domain/crypto"
	"prime_vault_service/internal/infrastructure/cryptography"
	"prime_vault_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// RSACommandHandler encapsulates logic for handling RSA operations via CLI.
type RSACommandHandler struct {
	rsaProcessor crypto.RSAProcessor
	logger       logger.Logger
}

// NewRSACommandHandler initializes a new RSACommandHandler with logging and an
// RSA processor.
func NewRSACommandHandler() (*RSACommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &RSACommandHandler{
		rsaProcessor: rsaProcessor,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists both halves as
// two-integer key files.
func (commandHandler *RSACommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	bits, err := cmd.Flags().GetInt("bits")
	if err != nil {
		commandHandler.logger.Error("invalid bits flag ", err)
		return
	}
	pubPath, err := cmd.Flags().GetString("pub")
	if err != nil {
		commandHandler.logger.Error("invalid pub flag ", err)
		return
	}
	privPath, err := cmd.Flags().GetString("priv")
	if err != nil {
		commandHandler.logger.Error("invalid priv flag ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag ", err)
		return
	}

	// --key-dir names the pair with a fresh id instead of the fixed paths.
	if keyDir != "" {
		uniqueID := uuid.New()
		pubPath = filepath.Join(keyDir, fmt.Sprintf("%s-public.key", uniqueID.String()))
		privPath = filepath.Join(keyDir, fmt.Sprintf("%s-private.key", uniqueID.String()))
	}

	commandHandler.logger.Info("Generating ", bits, "-bit key pair, this may take a moment")

	privateKey, publicKey, err := commandHandler.rsaProcessor.GenerateKeys(bits)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.rsaProcessor.SavePublicKeyToFile(publicKey, pubPath); err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if err := commandHandler.rsaProcessor.SavePrivateKeyToFile(privateKey, privPath); err != nil {
		commandHandler.logger.Error(err)
		return
	}
}

// EncryptCmd encrypts a message using a public key and saves the ciphertext
// blocks.
func (commandHandler *RSACommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}
	keyPath, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("out")
	if err != nil {
		commandHandler.logger.Error("invalid out flag ", err)
		return
	}

	publicKey, err := commandHandler.rsaProcessor.ReadPublicKey(keyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherBlocks, err := commandHandler.rsaProcessor.Encrypt([]byte(message), publicKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := commandHandler.rsaProcessor.SaveCiphertextToFile(cipherBlocks, outputFile); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts ciphertext blocks using a private key and prints the
// recovered message.
func (commandHandler *RSACommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	ciphertextPath, err := cmd.Flags().GetString("ciphertext")
	if err != nil {
		commandHandler.logger.Error("invalid ciphertext flag ", err)
		return
	}
	keyPath, err := cmd.Flags().GetString("key")
	if err != nil {
		commandHandler.logger.Error("invalid key flag ", err)
		return
	}

	privateKey, err := commandHandler.rsaProcessor.ReadPrivateKey(keyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cipherBlocks, err := commandHandler.rsaProcessor.ReadCiphertext(ciphertextPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	message, err := commandHandler.rsaProcessor.Decrypt(cipherBlocks, privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cmd.Println(string(message))
}

// InitRSACommands registers RSA-related commands
func InitRSACommands(rootCmd *cobra.Command) error {
	handler, err := NewRSACommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create RSA command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate",
		Short: "Generate a new public/private key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("bits", "b", 2048, "Key size in bits (must be an even number)")
	generateKeysCmd.Flags().StringP("pub", "", "public.key", "Output file for the public key")
	generateKeysCmd.Flags().StringP("priv", "", "private.key", "Output file for the private key")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store a uniquely named key pair (overrides --pub/--priv)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message using a public key",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("message", "m", "", "The plaintext message to encrypt")
	encryptCmd.Flags().StringP("key", "k", "public.key", "Path to the public key file")
	encryptCmd.Flags().StringP("out", "o", "ciphertext.txt", "Output file for the ciphertext")
	if err := encryptCmd.MarkFlagRequired("message"); err != nil {
		return fmt.Errorf("failed to mark message flag required: %w", err)
	}
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext file using a private key",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("ciphertext", "c", "ciphertext.txt", "Path to the ciphertext file")
	decryptCmd.Flags().StringP("key", "k", "private.key", "Path to the private key file")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
