// Package main 启动应用程序
package main

import "github.com/yeisme/gamevault/pkg/cmd"

//	@title			GameVault API
//	@version		1.0
//	@description	GameVault 是一个游戏门户服务，提供游戏目录管理、资产上传、限时下载链接、试玩与用户历史等功能。

//	@license.name	MIT
//	@license.url	https://opensource.org/license/mit/

//	@contact.name	yeisme
//	@contact.email	yefun2004@gmail.com.

func main() {
	if err := cmd.Execute(); err != nil {
		panic(err)
	}
}
