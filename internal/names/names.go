// Package names supplies the enumerable sampler and scheduler identifiers
// that the categorical loop nodes traverse. The identifiers are opaque
// strings owned by the rendering host; this package only knows how to obtain
// them, either from the built-in fallback lists or live from a running host.
package names

// Catalog is the read-only registry of valid sampler and scheduler names.
// Loop nodes treat the returned slices as immutable and order-significant.
type Catalog interface {
	Samplers() []string
	Schedulers() []string
}

// Static is a Catalog backed by fixed name lists.
type Static struct {
	samplers   []string
	schedulers []string
}

// NewStatic builds a Catalog from explicit name lists.
func NewStatic(samplers, schedulers []string) *Static {
	return &Static{samplers: samplers, schedulers: schedulers}
}

// Samplers returns the ordered sampler names.
func (s *Static) Samplers() []string {
	return s.samplers
}

// Schedulers returns the ordered scheduler names.
func (s *Static) Schedulers() []string {
	return s.schedulers
}

// Builtin returns the fallback catalog used when no live host registry is
// configured. The lists mirror the stock KSampler names so grids keep
// working offline.
func Builtin() *Static {
	return NewStatic(builtinSamplers, builtinSchedulers)
}

var builtinSamplers = []string{
	"euler", "euler_cfg_pp", "euler_ancestral", "euler_ancestral_cfg_pp",
	"heun", "heunpp2", "dpm_2", "dpm_2_ancestral", "lms", "dpm_fast",
	"dpm_adaptive", "dpmpp_2s_ancestral", "dpmpp_2s_ancestral_cfg_pp",
	"dpmpp_sde", "dpmpp_sde_gpu", "dpmpp_2m", "dpmpp_2m_cfg_pp",
	"dpmpp_2m_sde", "dpmpp_2m_sde_gpu", "dpmpp_3m_sde", "dpmpp_3m_sde_gpu",
	"ddpm", "lcm", "ipndm", "ipndm_v", "deis", "res_multistep",
	"res_multistep_cfg_pp", "res_multistep_ancestral", "res_multistep_ancestral_cfg_pp",
	"gradient_estimation", "gradient_estimation_cfg_pp", "er_sde",
	"seeds_2", "seeds_3", "sa_solver", "sa_solver_pece",
}

var builtinSchedulers = []string{
	"normal", "karras", "exponential", "sgm_uniform", "simple", "ddim_uniform",
}
