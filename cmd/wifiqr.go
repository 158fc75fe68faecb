package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pders01/belt/internal/config"
	"github.com/pders01/belt/internal/wifiqr"
)

var (
	wifiSSID     string
	wifiPassword string
	wifiAuthType string
	wifiLocation string
)

var wifiqrCmd = &cobra.Command{
	Use:   "wifiqr -s <ssid> -p <password>",
	Short: "Render a WiFi QR code card as wifi.pdf",
	Long: `Fill a business-card LaTeX template with a QR code that joins the
given network and compile it with tectonic. The result is written to
wifi.pdf in the current directory.

Example:
  belt wifiqr -s home -p 'correct horse' -l "Living room"`,
	Args: cobra.NoArgs,
	RunE: runWifiQR,
}

func init() {
	rootCmd.AddCommand(wifiqrCmd)

	wifiqrCmd.Flags().StringVarP(&wifiSSID, "ssid", "s", "", "Network name")
	wifiqrCmd.Flags().StringVarP(&wifiPassword, "password", "p", "", "Network password")
	wifiqrCmd.Flags().StringVarP(&wifiAuthType, "authtype", "a", "", "Authentication type: WPA2, WPA, WEP or nopass (default from wifiqr.authtype)")
	wifiqrCmd.Flags().StringVarP(&wifiLocation, "location", "l", "", "Where the network is, printed on the card")
	wifiqrCmd.MarkFlagRequired("ssid") //nolint:errcheck
}

func runWifiQR(cmd *cobra.Command, args []string) error {
	if err := requireTools("tectonic"); err != nil {
		return err
	}

	authType := wifiAuthType
	if authType == "" {
		authType = config.GetWifiAuthType()
	}

	return wifiqr.Build(newRunner(), appFs, wifiqr.Options{
		SSID:     wifiSSID,
		Password: wifiPassword,
		AuthType: authType,
		Location: wifiLocation,
	}, "wifi.pdf")
}
