package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Rotation     Rotation     `mapstructure:",squash"`
	Commission   Commission   `mapstructure:",squash"`
	MonthlyClose MonthlyClose `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Rotation struct {
	// CountPassedTurns controla se passar a vez soma uma unidade na contagem
	// mensal do barbeiro (regra observada no sistema original)
	CountPassedTurns bool `mapstructure:"rotation_count_passed_turns"`
	// TieBreak define o desempate: "name" (alfabético) ou "fewest_passes"
	TieBreak string `mapstructure:"rotation_tie_break"`
}

type Commission struct {
	// Percentage é a fração da receita destinada a comissão (ex: 0.40 = 40%)
	Percentage string `mapstructure:"commission_percentage"`
}

type MonthlyClose struct {
	CronSchedule string `mapstructure:"monthly_close_cron"`
	Enabled      bool   `mapstructure:"monthly_close_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/barbershop")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	// Defaults da lista da vez
	viper.SetDefault("ROTATION_COUNT_PASSED_TURNS", true) // Passar a vez conta como atendimento
	viper.SetDefault("ROTATION_TIE_BREAK", "name")        // Desempate alfabético

	// Defaults de comissão
	viper.SetDefault("COMMISSION_PERCENTAGE", "0.40") // 40% da receita de assinaturas

	// Defaults do fechamento mensal
	viper.SetDefault("MONTHLY_CLOSE_CRON", "0 5 1 * *") // No primeiro dia de cada mês às 5h da manhã
	viper.SetDefault("MONTHLY_CLOSE_ENABLED", false)    // Habilitar fechamento mensal automático

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
