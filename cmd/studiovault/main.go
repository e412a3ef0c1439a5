// Package main 启动应用程序
package main

import "github.com/yeisme/studiovault/pkg/cmd"

//	@title			StudioVault API
//	@version		1.0
//	@description	StudioVault 是摄影工作室的媒体管理后台，提供管理员登录、图片与视频管理、直传签名和静态数据接口。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
