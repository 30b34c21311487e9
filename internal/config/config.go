package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/reversi-agent/internal/apperror"
	"github.com/rocketscienceinc/reversi-agent/internal/entity"
)

const (
	minMode = 0
	maxMode = 4
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env-default:"info"`
	BasePort    int     `yaml:"base-port" env-default:"3333"`
	SearchDepth int     `yaml:"search-depth" env-default:"4"`
	Journal     Journal `yaml:"journal"`
	Redis       Redis   `yaml:"redis"`
}

type Journal struct {
	Enabled bool `yaml:"enabled" env-default:"false"`
}

type Redis struct {
	Host string `yaml:"host" env-default:"localhost"`
	Port string `yaml:"port" env-default:"6379"`
}

// Args are the positional command-line arguments: server address, player number, evaluation mode.
type Args struct {
	ServerAddr string
	Player     entity.Color
	Mode       int
}

// MustLoad - load configuration from the yml file, or defaults when the file does not exist.
func MustLoad(path string) *Config {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(config)
	case err == nil:
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// ParseArgs - validates the positional arguments. The mode may be omitted or empty and then defaults to 0.
func ParseArgs(args []string) (*Args, error) {
	if len(args) < 2 {
		return nil, fmt.Errorf("%w: usage: <server-address> <player 1|2> [mode 0-4]", apperror.ErrMissingArgument)
	}

	player, err := strconv.Atoi(strings.TrimSpace(args[1]))
	if err != nil || (player != int(entity.Player1) && player != int(entity.Player2)) {
		return nil, fmt.Errorf("%w: got %q", apperror.ErrInvalidPlayer, args[1])
	}

	mode := minMode
	if len(args) > 2 && strings.TrimSpace(args[2]) != "" {
		mode, err = strconv.Atoi(strings.TrimSpace(args[2]))
		if err != nil || mode < minMode || mode > maxMode {
			return nil, fmt.Errorf("%w: got %q", apperror.ErrInvalidMode, args[2])
		}
	}

	return &Args{
		ServerAddr: args[0],
		Player:     entity.Color(player),
		Mode:       mode,
	}, nil
}

// ServerAddress - host joined with the base port offset by the player number.
func (that *Args) ServerAddress(basePort int) string {
	return net.JoinHostPort(that.ServerAddr, strconv.Itoa(basePort+int(that.Player)))
}
