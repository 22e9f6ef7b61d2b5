package service

import "os"

// LoadModelMetadata reads the pre-rendered legacy model-info blob a
// Chassis-built image ships at build time, checked in the same
// explicit-path-then-model-dir preference order as LoadContainerInfo.
func LoadModelMetadata(explicitPath, modelDir string) ([]byte, error) {
	path := explicitPath
	if path == "" {
		path = modelDir + "/model_info"
	}
	return os.ReadFile(path)
}
