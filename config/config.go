package config

import (
	"fmt"
	"math/big"
	"path/filepath"
	"sort"

	"github.com/spacemeshos/smutil"

	"github.com/hyperhyperspace/pulsar/codec"
	"github.com/hyperhyperspace/pulsar/shared"
)

// Primes congruent to 3 mod 4, by bit length.
const (
	Modulus2048 = "18542111093677732642459272540680023393198879339367365649299639012068586613493175724387340354353111519181603382253520746587433467244389986210657924066902848991660143586720189102552949129628562600000172028774676946052646755346835583090812678091066252835235488687753628768865919970693645271980583737803244915952438318300513099580774719850018671536430927997549336608649130345154538967404891278361532297053379870415751929589720311522784991492978835850775723579826840066304564093273475005489970412907306043287050400820333253021327343980185015431134151910938109381052727042887923775405006238632313473756430774656524887983019"
	Modulus1024 = "170082004324204494273811327264862981553264701145937538369570764779791492622392118654022654452947093285873855529044371650895045691292912712699015605832276411308653107069798639938826015099738961427172366594187783204437869906954750443653318078358839409699824714551430573905637228307966826784684174483831608534979"
	Modulus256  = "64106875808534963770974826322234655855469213855659218736479077548818158667371"
	Modulus128  = "297010851887946822574352571639152315287"
)

const (
	DefaultDataDirName      = "data"
	DefaultIterations       = 10000
	DefaultProgressInterval = 1000
)

var (
	DefaultDataDir = filepath.Join(smutil.GetUserHomeDirectory(), "pulsar", DefaultDataDirName)

	// systemModulus is never handed out directly, see SystemModulus.
	systemModulus, _ = new(big.Int).SetString(Modulus1024, 10)

	presets = map[string]string{
		"2048": Modulus2048,
		"1024": Modulus1024,
		"256":  Modulus256,
		"128":  Modulus128,
	}
)

// SystemModulus returns a copy of the 1024-bit modulus the system runs with
// unless configured otherwise.
func SystemModulus() *big.Int {
	return new(big.Int).Set(systemModulus)
}

type Config struct {
	// Modulus is the prime p in decimal. It must be congruent to 3 mod 4,
	// which is assumed rather than checked.
	Modulus    string `mapstructure:"modulus"`
	ByteLen    uint   `mapstructure:"bytelen"`
	Iterations uint64 `mapstructure:"iterations"`

	// ProgressInterval is the number of iterations between progress reports
	// while generating a proof.
	ProgressInterval uint64 `mapstructure:"progress-interval"`
	DataDir          string `mapstructure:"datadir"`
}

// Prime parses the configured modulus.
func (cfg Config) Prime() (*big.Int, error) {
	p, ok := new(big.Int).SetString(cfg.Modulus, 10)
	if !ok {
		return nil, fmt.Errorf("invalid `Modulus`; expected: a decimal integer, given: %q", cfg.Modulus)
	}
	if p.Cmp(big.NewInt(1)) <= 0 {
		return nil, fmt.Errorf("%w, given: %s", shared.ErrDegenerateModulus, p)
	}
	return p, nil
}

func Validate(cfg Config) error {
	p, err := cfg.Prime()
	if err != nil {
		return err
	}

	if need := codec.ByteLen(p); cfg.ByteLen < uint(need) {
		return fmt.Errorf("invalid `ByteLen`; expected: >= %d, given: %d", need, cfg.ByteLen)
	}

	if cfg.ProgressInterval == 0 {
		return fmt.Errorf("invalid `ProgressInterval`; expected: > 0, given: %d", cfg.ProgressInterval)
	}

	return nil
}

func DefaultConfig() Config {
	return Config{
		Modulus:          Modulus1024,
		ByteLen:          codec.DefaultByteLen,
		Iterations:       DefaultIterations,
		ProgressInterval: DefaultProgressInterval,
		DataDir:          DefaultDataDir,
	}
}

// Preset returns the default config with the modulus of the given bit length
// and the smallest byte width that holds it.
func Preset(name string) (Config, error) {
	modulus, ok := presets[name]
	if !ok {
		return Config{}, fmt.Errorf("unknown preset %q; expected one of %v", name, Presets())
	}

	cfg := DefaultConfig()
	cfg.Modulus = modulus
	p, _ := cfg.Prime()
	cfg.ByteLen = uint(codec.ByteLen(p))
	return cfg, nil
}

// Presets lists the available preset names.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
