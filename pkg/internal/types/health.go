package types

// HealthEnv 环境凭据就绪状态.
type HealthEnv struct {
	HasDatabase bool `json:"hasDatabase"`
	HasStorage  bool `json:"hasStorage"`
	HasAuth     bool `json:"hasAuth"`
}

// HealthResponse 健康检查响应.
type HealthResponse struct {
	OK      bool      `json:"ok"`
	DBState string    `json:"dbState"`
	Env     HealthEnv `json:"env"`
}
