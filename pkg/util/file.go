package util

import (
	"io/ioutil"
	"os"
	"strings"
)

// We have to manually swap out environment variables,
// as Viper's AutomaticEnv() doesn't work with Unmarshal() for keys it has never seen.
// Only variables with the given prefix are replaced.
func ReplaceEnvVariablesFromPath(filePath string, envVarPrefix string) ([]byte, error) {
	content, err := ioutil.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	contentString := string(content)
	for _, envVarValPair := range os.Environ() {
		if strings.HasPrefix(envVarValPair, envVarPrefix) {
			envVar := strings.SplitN(envVarValPair, "=", 2)[0]
			contentString = strings.ReplaceAll(contentString, envVar, os.Getenv(envVar))
		}
	}

	return []byte(contentString), nil
}
