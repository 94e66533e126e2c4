package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"magento-commerce-actions/internal/config"
	"magento-commerce-actions/pkg/server"
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <action>",
	Short: "Invoke an action and print its envelope",
	Long: `Invoke runs one action with the configured defaults, the JSON object in
--file and every --param key=value, later sources winning. Values that look
like JSON are decoded, so --param address='{"city":"Basel"}' works.
Server settings (MAGENTO_*, DEBUG, default_method, default_carrier) come
from the environment and cannot be passed as parameters.`,
	Args: cobra.ExactArgs(1),
	RunE: runInvoke,
}

func init() {
	invokeCmd.Flags().StringP("file", "f", "", "JSON file with action parameters")
	invokeCmd.Flags().StringArrayP("param", "p", nil, "Action parameter as key=value (repeatable)")
	invokeCmd.Flags().Duration("timeout", 30*time.Second, "Overall invocation timeout")
	rootCmd.AddCommand(invokeCmd)
}

func runInvoke(cmd *cobra.Command, args []string) error {
	file, _ := cmd.Flags().GetString("file")
	pairs, _ := cmd.Flags().GetStringArray("param")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	params, err := loadParams(file)
	if err != nil {
		return err
	}
	if err := applyParams(params, pairs); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	container, err := server.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer container.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	env, err := container.Invoke(ctx, args[0], params)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))

	if env.Failed() {
		return fmt.Errorf("action %s failed with %s", args[0], env.Error.Name)
	}
	return nil
}

func loadParams(path string) (map[string]interface{}, error) {
	params := make(map[string]interface{})
	if path == "" {
		return params, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parameter file: %w", err)
	}
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("parameter file must hold a JSON object: %w", err)
	}
	return params, nil
}

func applyParams(params map[string]interface{}, pairs []string) error {
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return fmt.Errorf("invalid parameter %q, expected key=value", pair)
		}
		params[key] = parseValue(value)
	}
	return nil
}

// parseValue decodes JSON objects and arrays and keeps everything else as
// a string, leaving scalar coercion to the action.
func parseValue(value string) interface{} {
	trimmed := strings.TrimSpace(value)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		var decoded interface{}
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return decoded
		}
	}
	return value
}
