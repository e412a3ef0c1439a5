package handle

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeisme/studiovault/pkg/configs"
)

// GetData 读取数据目录下的 JSON 文件并原样返回其内容.
//   - 文件名必须以 .json 结尾且不得包含路径成分，否则 400
//   - 文件不存在返回 404
//   - 文件存在但不是合法 JSON 返回 500
//
//	@Summary		读取静态 JSON 数据
//	@Description	按文件名读取数据目录下的 JSON 文件，解析后透传
//	@Tags			数据
//	@Produce		json
//	@Param			filename	path		string				true	"JSON 文件名"
//	@Success		200			{object}	any					"文件内容"
//	@Failure		400			{object}	map[string]string	"文件名不合法"
//	@Failure		404			{object}	map[string]string	"文件不存在"
//	@Failure		500			{object}	map[string]string	"文件内容不是合法 JSON"
//	@Router			/api/data/{filename} [get]
func GetData(c *gin.Context) {
	filename := c.Param("filename")

	if !validDataFilename(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})

		return
	}

	path := filepath.Join(configs.GetConfig().Server.DataDir, filename)

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Data file not found"})

			return
		}

		requestLogger(c).Error().Err(err).Str("filename", filename).Msg("read data file failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read data file"})

		return
	}

	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		requestLogger(c).Error().Err(err).Str("filename", filename).Msg("data file is not valid JSON")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Data file is not valid JSON"})

		return
	}

	c.JSON(http.StatusOK, payload)
}

// validDataFilename 只允许数据目录下的裸 JSON 文件名，拒绝任何路径穿越.
func validDataFilename(filename string) bool {
	if !strings.HasSuffix(filename, ".json") {
		return false
	}

	if strings.Contains(filename, "..") {
		return false
	}

	if strings.ContainsAny(filename, `/\`) {
		return false
	}

	return true
}
