//go:build darwin

// Package permissions 提供截屏所需的系统权限检查（macOS 专用）
package permissions

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework CoreGraphics
#import <Cocoa/Cocoa.h>
#import <CoreGraphics/CoreGraphics.h>

int checkScreenRecordingPermission() {
    if (@available(macOS 10.15, *)) {
        CFArrayRef windowList = CGWindowListCopyWindowInfo(
            kCGWindowListOptionOnScreenOnly | kCGWindowListExcludeDesktopElements,
            kCGNullWindowID
        );

        if (windowList == NULL) {
            return 0;
        }

        CFIndex count = CFArrayGetCount(windowList);
        int hasNames = 0;

        for (CFIndex i = 0; i < count; i++) {
            CFDictionaryRef window = (CFDictionaryRef)CFArrayGetValueAtIndex(windowList, i);
            CFStringRef name = (CFStringRef)CFDictionaryGetValue(window, kCGWindowName);
        if (name != NULL && CFStringGetLength(name) > 0) {
            hasNames = 1;
            break;
        }
        }

        CFRelease(windowList);
        return (count == 0 || hasNames) ? 1 : 0;
    }
    return 1;
}

void openScreenRecordingPreferences() {
    NSString *urlString = @"x-apple.systempreferences:com.apple.preference.security?Privacy_ScreenCapture";
    [[NSWorkspace sharedWorkspace] openURL:[NSURL URLWithString:urlString]];
}
*/
import "C"
import (
	"fmt"
	"os/exec"
)

// PermissionStatus 权限状态
type PermissionStatus struct {
	ScreenRecording bool `json:"screen_recording"`
}

// CheckPermissions 检查截屏权限（不触发弹窗）
func CheckPermissions() *PermissionStatus {
	return &PermissionStatus{
		ScreenRecording: C.checkScreenRecordingPermission() == 1,
	}
}

// OpenScreenRecordingSettings 打开屏幕录制设置页面
func OpenScreenRecordingSettings() {
	C.openScreenRecordingPreferences()
}

// GetPermissionInstructions 获取权限说明
func GetPermissionInstructions(status *PermissionStatus) string {
	if status.ScreenRecording {
		return ""
	}

	msg := "需要授权以下权限才能正常工作:\n\n"
	msg += "屏幕录制权限 (用于截屏和找色)\n"
	msg += "   系统偏好设置 > 安全性与隐私 > 隐私 > 屏幕录制\n\n"
	msg += "授权后需要重启应用才能生效。"

	return msg
}

// EnsurePermissions 确保权限已授予
func EnsurePermissions() (bool, string) {
	status := CheckPermissions()
	if status.ScreenRecording {
		return true, ""
	}

	return false, GetPermissionInstructions(status)
}

// PrintPermissionStatus 打印权限状态
func PrintPermissionStatus() {
	status := CheckPermissions()
	fmt.Printf("权限状态:\n")
	fmt.Printf("  屏幕录制: %v\n", status.ScreenRecording)

	if !status.ScreenRecording {
		fmt.Println(GetPermissionInstructions(status))
	}
}

// ResetPermissions 重置权限状态
func ResetPermissions() error {
	bundleID := "com.pixseek.pixseek"

	cmd := fmt.Sprintf("tccutil reset ScreenCapture %s", bundleID)
	if err := exec.Command("sh", "-c", cmd).Run(); err != nil {
		return fmt.Errorf("重置屏幕录制权限失败: %v", err)
	}

	return nil
}
